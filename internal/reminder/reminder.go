// Package reminder periodically logs the appointments coming up within a
// configured window. Delivery (mail, SMS) is an external concern; this sweep
// only surfaces what is due.
package reminder

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/registry"
)

type Sweeper struct {
	reg    *registry.Registry
	window time.Duration
}

func NewSweeper(reg *registry.Registry, window time.Duration) *Sweeper {
	return &Sweeper{reg: reg, window: window}
}

// Upcoming returns the scheduled appointments whose start falls within the
// sweep window measured from now.
func (s *Sweeper) Upcoming(now time.Time) []*clinic.Appointment {
	return s.reg.AppointmentsBetween(now, now.Add(s.window))
}

// Start registers the sweep on a cron schedule and starts the scheduler.
// The returned cron should be stopped on shutdown.
func (s *Sweeper) Start(schedule string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, s.run); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("reminder sweep started schedule=%q window=%s", schedule, s.window)
	return c, nil
}

func (s *Sweeper) run() {
	due := s.Upcoming(time.Now())
	if len(due) == 0 {
		return
	}
	log.Printf("reminder: %d appointment(s) due within %s", len(due), s.window)
	for _, appt := range due {
		log.Printf(
			"reminder: appointment=%s patient=%q doctor=%q service=%q at=%s",
			appt.ID,
			appt.Patient.FullName(),
			appt.Doctor.FullName(),
			appt.Service.Name,
			appt.Time.Format("2006-01-02 15:04"),
		)
	}
}
