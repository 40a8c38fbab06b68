package clinic

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MedicalResult is an immutable clinical finding written by a doctor.
type MedicalResult struct {
	ID          uuid.UUID
	Type        string
	Title       string
	Description string
	CreatedAt   time.Time
}

func NewMedicalResult(resultType, title, description string) *MedicalResult {
	return &MedicalResult{
		ID:          uuid.New(),
		Type:        resultType,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// MedicalRecord is the clinical history container owned by exactly one
// patient. Both lists are append-only.
type MedicalRecord struct {
	ID        uuid.UUID
	BloodType string
	Allergies string

	mu           sync.Mutex
	results      []*MedicalResult
	appointments []*Appointment
}

func NewMedicalRecord(bloodType, allergies string) *MedicalRecord {
	return &MedicalRecord{
		ID:        uuid.New(),
		BloodType: bloodType,
		Allergies: allergies,
	}
}

func (r *MedicalRecord) AddMedicalResult(res *MedicalResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *MedicalRecord) AddAppointment(appt *Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, appt)
}

// Results returns the recorded findings in the order they were added.
func (r *MedicalRecord) Results() []*MedicalResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*MedicalResult, len(r.results))
	copy(out, r.results)
	return out
}

// Appointments returns the appointment history in booking order.
func (r *MedicalRecord) Appointments() []*Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}
