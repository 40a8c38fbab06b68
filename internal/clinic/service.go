package clinic

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service is a billable offering restricted to the doctors qualified to
// perform it.
type Service struct {
	ID       uuid.UUID
	Name     string
	Cost     float64
	Duration time.Duration

	mu      sync.Mutex
	doctors []*Doctor
}

func NewService(name string, cost float64, duration time.Duration) *Service {
	return &Service{
		ID:       uuid.New(),
		Name:     name,
		Cost:     cost,
		Duration: duration,
	}
}

// AddDoctor appends a qualifying doctor. Duplicates are permitted.
func (s *Service) AddDoctor(d *Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = append(s.doctors, d)
}

// Doctors returns every associated doctor in add order.
func (s *Service) Doctors() []*Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// AvailableDoctors returns the associated doctors that currently have at
// least one open slot, in add order. The filter is recomputed on every call
// since availability changes as slots are reserved.
func (s *Service) AvailableDoctors() []*Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Doctor
	for _, d := range s.doctors {
		if d.HasAvailability() {
			out = append(out, d)
		}
	}
	return out
}
