package clinic

import (
	"sync"

	"github.com/google/uuid"
)

type Patient struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Insurance string

	mu     sync.Mutex
	phone  string
	record *MedicalRecord
}

func NewPatient(firstName, lastName, phone, insurance string) *Patient {
	return &Patient{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Insurance: insurance,
		phone:     phone,
	}
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Patient) Phone() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phone
}

func (p *Patient) UpdatePhone(phone string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phone = phone
}

// Record returns the patient's medical record, nil until one is attached.
func (p *Patient) Record() *MedicalRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.record
}

// SetRecord attaches the medical record. A record is attached at most once;
// later calls are ignored.
func (p *Patient) SetRecord(r *MedicalRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.record != nil {
		return
	}
	p.record = r
}
