package clinic

import "sync"

type Doctor struct {
	Employee
	Specialization string
	LicenseNumber  string
	Room           *Room

	mu    sync.Mutex
	slots []*TimeSlot
}

func NewDoctor(firstName, lastName, phone, specialization, licenseNumber string, room *Room) *Doctor {
	return &Doctor{
		Employee:       newEmployee(firstName, lastName, phone),
		Specialization: specialization,
		LicenseNumber:  licenseNumber,
		Room:           room,
	}
}

// AddTimeSlot appends to the doctor's calendar. No de-duplication and no
// overlap check; slots are trusted as given.
func (d *Doctor) AddTimeSlot(slot *TimeSlot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slots = append(d.slots, slot)
}

// Slots returns the whole calendar in the order slots were added.
func (d *Doctor) Slots() []*TimeSlot {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*TimeSlot, len(d.slots))
	copy(out, d.slots)
	return out
}

// SlotsAvailable returns the currently reservable slots, preserving the
// original relative order. Recomputed on every call.
func (d *Doctor) SlotsAvailable() []*TimeSlot {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*TimeSlot
	for _, s := range d.slots {
		if s.Available() {
			out = append(out, s)
		}
	}
	return out
}

func (d *Doctor) HasAvailability() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, s := range d.slots {
		if s.Available() {
			return true
		}
	}
	return false
}

// CreateResult writes a clinical finding into the patient's medical record.
// The patient must already have a record attached at registration.
func (d *Doctor) CreateResult(patient *Patient, resultType, title, description string) (*MedicalResult, error) {
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	rec := patient.Record()
	if rec == nil {
		return nil, ErrNoMedicalRecord
	}
	res := NewMedicalResult(resultType, title, description)
	rec.AddMedicalResult(res)
	return res, nil
}
