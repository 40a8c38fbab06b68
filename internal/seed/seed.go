// Package seed fabricates a plausible clinic catalog so the server and the
// simulator have something to book against.
package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/registry"
)

type Options struct {
	Doctors     int
	Patients    int
	SlotsPerDay int
	Days        int
}

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var roomTypes = []string{"consultation", "exam", "procedure"}

type serviceSpec struct {
	name     string
	cost     float64
	duration time.Duration
}

var serviceCatalog = []serviceSpec{
	{"General Consultation", 150.00, 30 * time.Minute},
	{"Cardiology Checkup", 320.00, 45 * time.Minute},
	{"Dermatology Screening", 210.00, 30 * time.Minute},
	{"Pediatric Visit", 130.00, 30 * time.Minute},
	{"Vision Exam", 95.00, 20 * time.Minute},
}

// Populate fills the registry with doctors, a service catalog and registered
// patients. Every doctor gets an hourly slot calendar starting tomorrow at
// 09:00, and every service is offered by a rotating subset of doctors.
func Populate(reg *registry.Registry, admin *clinic.Administrator, opts Options) error {
	if opts.Doctors <= 0 {
		return fmt.Errorf("seed: doctors must be > 0, got %d", opts.Doctors)
	}

	gofakeit.Seed(time.Now().UnixNano())

	doctors := make([]*clinic.Doctor, 0, opts.Doctors)
	for i := 0; i < opts.Doctors; i++ {
		room := &clinic.Room{
			Number: fmt.Sprintf("%d%02d", gofakeit.Number(1, 4), gofakeit.Number(0, 30)),
			Type:   roomTypes[gofakeit.Number(0, len(roomTypes)-1)],
		}
		doc := clinic.NewDoctor(
			gofakeit.FirstName(),
			gofakeit.LastName(),
			gofakeit.Phone(),
			specialties[gofakeit.Number(0, len(specialties)-1)],
			fmt.Sprintf("LIC-%06d", gofakeit.Number(100000, 999999)),
			room,
		)
		addCalendar(doc, opts.SlotsPerDay, opts.Days)
		reg.AddDoctor(doc)
		doctors = append(doctors, doc)
	}
	log.Printf("seeded doctors=%d", len(doctors))

	for i, spec := range serviceCatalog {
		svc := clinic.NewService(spec.name, spec.cost, spec.duration)
		// rotate so each service gets a distinct, overlapping doctor subset
		for j := 0; j < len(doctors); j += 2 {
			svc.AddDoctor(doctors[(i+j)%len(doctors)])
		}
		reg.AddService(svc)
	}
	log.Printf("seeded services=%d", len(serviceCatalog))

	for i := 0; i < opts.Patients; i++ {
		p := admin.RegisterPatient(
			gofakeit.FirstName(),
			gofakeit.LastName(),
			gofakeit.Phone(),
			fmt.Sprintf("INS-%05d", gofakeit.Number(10000, 99999)),
			gofakeit.RandomString([]string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}),
			gofakeit.RandomString([]string{"none", "penicillin", "latex", "pollen"}),
		)
		reg.AddPatient(p)
	}
	log.Printf("seeded patients=%d", opts.Patients)

	return nil
}

func addCalendar(doc *clinic.Doctor, slotsPerDay, days int) {
	if slotsPerDay <= 0 {
		slotsPerDay = 8
	}
	if days <= 0 {
		days = 5
	}

	first := time.Now().AddDate(0, 0, 1)
	for d := 0; d < days; d++ {
		day := first.AddDate(0, 0, d)
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		for h := 0; h < slotsPerDay; h++ {
			start := time.Date(0, 1, 1, 9+h, 0, 0, 0, day.Location())
			end := start.Add(time.Hour)
			doc.AddTimeSlot(clinic.NewTimeSlot(date, start, end))
		}
	}
}
