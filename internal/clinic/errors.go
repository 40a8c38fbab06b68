package clinic

import "errors"

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNoMedicalRecord     = errors.New("patient has no medical record")
	ErrNoAvailability      = errors.New("no doctor has an available slot")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrAlreadyPaid         = errors.New("appointment is already paid")
	ErrSlotTaken           = errors.New("time slot is already reserved")
)
