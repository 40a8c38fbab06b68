package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/registry"
)

func TestPopulate(t *testing.T) {
	reg := registry.New()
	admin := clinic.NewAdministrator("Front", "Desk", "555-0100", "08:00-18:00")

	err := Populate(reg, admin, Options{Doctors: 4, Patients: 6, SlotsPerDay: 3, Days: 2})
	require.NoError(t, err)

	patients, doctors, services, appointments := reg.Counts()
	assert.Equal(t, 6, patients)
	assert.Equal(t, 4, doctors)
	assert.Equal(t, len(serviceCatalog), services)
	assert.Equal(t, 0, appointments)

	for _, d := range reg.Doctors() {
		assert.Len(t, d.Slots(), 6)
		assert.True(t, d.HasAvailability())
		require.NotNil(t, d.Room)
	}

	for _, p := range reg.Patients() {
		require.NotNil(t, p.Record(), "registered patients carry a medical record")
	}

	for _, svc := range reg.Services() {
		assert.NotEmpty(t, svc.Doctors())
		assert.Greater(t, svc.Cost, 0.0)
	}
}

func TestPopulateRequiresDoctors(t *testing.T) {
	reg := registry.New()
	admin := clinic.NewAdministrator("Front", "Desk", "555-0100", "08:00-18:00")

	err := Populate(reg, admin, Options{Doctors: 0, Patients: 1})
	assert.Error(t, err)
}
