package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicware/clinic-management/internal/clinic"
)

type RegisterPatientRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Insurance string `json:"insurance"`
	BloodType string `json:"blood_type"`
	Allergies string `json:"allergies"`
}

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Insurance string    `json:"insurance"`
	BloodType string    `json:"blood_type,omitempty"`
	Allergies string    `json:"allergies,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id"`
	ServiceID string `json:"service_id"`
}

type AppointmentResponse struct {
	ID           uuid.UUID        `json:"id"`
	PatientID    uuid.UUID        `json:"patient_id"`
	DoctorID     uuid.UUID        `json:"doctor_id"`
	ServiceID    uuid.UUID        `json:"service_id"`
	SlotID       uuid.UUID        `json:"slot_id"`
	Time         time.Time        `json:"time"`
	Status       string           `json:"status"`
	CancelReason string           `json:"cancel_reason,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	Payment      *PaymentResponse `json:"payment,omitempty"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type CompleteAppointmentRequest struct {
	Notes string `json:"notes"`
}

type PaymentResponse struct {
	ID     uuid.UUID `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

type CreateResultRequest struct {
	DoctorID    string `json:"doctor_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ResultResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Cost     float64   `json:"cost"`
	Duration string    `json:"duration"`
}

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Room           string    `json:"room,omitempty"`
	OpenSlots      int       `json:"open_slots"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toPatientResponse(p *clinic.Patient) PatientResponse {
	resp := PatientResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone(),
		Insurance: p.Insurance,
	}
	if rec := p.Record(); rec != nil {
		resp.BloodType = rec.BloodType
		resp.Allergies = rec.Allergies
	}
	return resp
}

func toAppointmentResponse(a *clinic.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:           a.ID,
		PatientID:    a.Patient.ID,
		DoctorID:     a.Doctor.ID,
		ServiceID:    a.Service.ID,
		SlotID:       a.Slot.ID,
		Time:         a.Time,
		Status:       string(a.Status()),
		CancelReason: a.CancelReason(),
		Notes:        a.Notes(),
	}
	if p := a.Payment(); p != nil {
		pr := toPaymentResponse(p)
		resp.Payment = &pr
	}
	return resp
}

func toPaymentResponse(p *clinic.Payment) PaymentResponse {
	return PaymentResponse{
		ID:     p.ID,
		Amount: p.Amount,
		Date:   p.Date,
		Status: string(p.Status()),
	}
}

func toDoctorResponse(d *clinic.Doctor) DoctorResponse {
	resp := DoctorResponse{
		ID:             d.ID,
		Name:           d.FullName(),
		Specialization: d.Specialization,
		OpenSlots:      len(d.SlotsAvailable()),
	}
	if d.Room != nil {
		resp.Room = d.Room.Number
	}
	return resp
}
