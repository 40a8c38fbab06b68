// Package registry is the in-memory directory that retains the object graph
// for the HTTP layer. The domain model itself keeps no references to what it
// creates, so anything that should be addressable by ID lands here.
package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clinicware/clinic-management/internal/clinic"
)

type Registry struct {
	mu           sync.RWMutex
	patients     map[uuid.UUID]*clinic.Patient
	doctors      map[uuid.UUID]*clinic.Doctor
	services     map[uuid.UUID]*clinic.Service
	appointments map[uuid.UUID]*clinic.Appointment

	// listing order is stable across calls
	patientOrder []uuid.UUID
	serviceOrder []uuid.UUID
	doctorOrder  []uuid.UUID
}

func New() *Registry {
	return &Registry{
		patients:     make(map[uuid.UUID]*clinic.Patient),
		doctors:      make(map[uuid.UUID]*clinic.Doctor),
		services:     make(map[uuid.UUID]*clinic.Service),
		appointments: make(map[uuid.UUID]*clinic.Appointment),
	}
}

func (r *Registry) AddPatient(p *clinic.Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.patients[p.ID]; !exists {
		r.patientOrder = append(r.patientOrder, p.ID)
	}
	r.patients[p.ID] = p
}

func (r *Registry) Patients() []*clinic.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*clinic.Patient, 0, len(r.patientOrder))
	for _, id := range r.patientOrder {
		out = append(out, r.patients[id])
	}
	return out
}

func (r *Registry) GetPatient(id uuid.UUID) (*clinic.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, clinic.ErrPatientNotFound
	}
	return p, nil
}

func (r *Registry) AddDoctor(d *clinic.Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.doctors[d.ID]; !exists {
		r.doctorOrder = append(r.doctorOrder, d.ID)
	}
	r.doctors[d.ID] = d
}

func (r *Registry) GetDoctor(id uuid.UUID) (*clinic.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.doctors[id]
	if !ok {
		return nil, clinic.ErrDoctorNotFound
	}
	return d, nil
}

func (r *Registry) Doctors() []*clinic.Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*clinic.Doctor, 0, len(r.doctorOrder))
	for _, id := range r.doctorOrder {
		out = append(out, r.doctors[id])
	}
	return out
}

func (r *Registry) AddService(s *clinic.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.services[s.ID]; !exists {
		r.serviceOrder = append(r.serviceOrder, s.ID)
	}
	r.services[s.ID] = s
}

func (r *Registry) GetService(id uuid.UUID) (*clinic.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[id]
	if !ok {
		return nil, clinic.ErrServiceNotFound
	}
	return s, nil
}

func (r *Registry) Services() []*clinic.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*clinic.Service, 0, len(r.serviceOrder))
	for _, id := range r.serviceOrder {
		out = append(out, r.services[id])
	}
	return out
}

func (r *Registry) AddAppointment(a *clinic.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[a.ID] = a
}

func (r *Registry) GetAppointment(id uuid.UUID) (*clinic.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.appointments[id]
	if !ok {
		return nil, clinic.ErrAppointmentNotFound
	}
	return a, nil
}

// AppointmentsBetween returns the scheduled appointments whose time falls in
// [from, to). Used by the reminder sweep.
func (r *Registry) AppointmentsBetween(from, to time.Time) []*clinic.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*clinic.Appointment
	for _, a := range r.appointments {
		if a.Status() != clinic.StatusScheduled {
			continue
		}
		if a.Time.Before(from) || !a.Time.Before(to) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Counts reports registry sizes for the readiness endpoint.
func (r *Registry) Counts() (patients, doctors, services, appointments int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patients), len(r.doctors), len(r.services), len(r.appointments)
}
