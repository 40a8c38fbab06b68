package clinic

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment joins a patient, a doctor, a service and the reserved slot.
// Time is derived from the slot's date and start time at construction.
type Appointment struct {
	ID        uuid.UUID
	Time      time.Time
	Patient   *Patient
	Doctor    *Doctor
	Service   *Service
	Slot      *TimeSlot
	CreatedAt time.Time

	mu           sync.Mutex
	status       AppointmentStatus
	cancelReason string
	notes        string
	payment      *Payment
}

func NewAppointment(patient *Patient, doctor *Doctor, service *Service, slot *TimeSlot) *Appointment {
	return &Appointment{
		ID:        uuid.New(),
		Time:      slot.StartAt(),
		Patient:   patient,
		Doctor:    doctor,
		Service:   service,
		Slot:      slot,
		CreatedAt: time.Now(),
		status:    StatusScheduled,
	}
}

func (a *Appointment) Status() AppointmentStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Cancel moves a scheduled appointment to cancelled and records the reason.
// Cancelled and completed are terminal.
func (a *Appointment) Cancel(reason string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != StatusScheduled {
		return ErrInvalidTransition
	}
	a.status = StatusCancelled
	a.cancelReason = reason
	return nil
}

// Complete moves a scheduled appointment to completed and records the
// visit notes.
func (a *Appointment) Complete(notes string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.status != StatusScheduled {
		return ErrInvalidTransition
	}
	a.status = StatusCompleted
	a.notes = notes
	return nil
}

func (a *Appointment) CancelReason() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancelReason
}

func (a *Appointment) Notes() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.notes
}

func (a *Appointment) ServiceCost() float64 {
	return a.Service.Cost
}

func (a *Appointment) Payment() *Payment {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.payment
}

// AttachPayment links the payment onto the appointment. An appointment
// carries at most one payment.
func (a *Appointment) AttachPayment(p *Payment) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.payment != nil {
		return ErrAlreadyPaid
	}
	a.payment = p
	return nil
}
