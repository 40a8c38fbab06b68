package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/registry"
)

type fixture struct {
	handler http.Handler
	admin   *clinic.Administrator
	reg     *registry.Registry
	doctor  *clinic.Doctor
	service *clinic.Service
}

func newFixture(t *testing.T, openSlots int) *fixture {
	t.Helper()

	reg := registry.New()
	admin := clinic.NewAdministrator("Front", "Desk", "555-0100", "08:00-18:00")

	doctor := clinic.NewDoctor("Grace", "Ward", "555-0101", "General Practice", "LIC-000001",
		&clinic.Room{Number: "101", Type: "consultation"})
	day := time.Now().AddDate(0, 0, 1)
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	for i := 0; i < openSlots; i++ {
		start := time.Date(0, 1, 1, 9+i, 0, 0, 0, day.Location())
		doctor.AddTimeSlot(clinic.NewTimeSlot(date, start, start.Add(time.Hour)))
	}
	reg.AddDoctor(doctor)

	service := clinic.NewService("General Consultation", 150.00, 30*time.Minute)
	service.AddDoctor(doctor)
	reg.AddService(service)

	handler := NewRouter(RouterConfig{
		Admin:    admin,
		Registry: reg,
		Env:      "test",
		Version:  "test",
	})

	return &fixture{handler: handler, admin: admin, reg: reg, doctor: doctor, service: service}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func (f *fixture) registerPatient(t *testing.T) PatientResponse {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/patients", RegisterPatientRequest{
		FirstName: "Anna",
		LastName:  "Lee",
		Phone:     "555-1234",
		Insurance: "INS-9",
		BloodType: "O+",
		Allergies: "penicillin",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[PatientResponse](t, rec)
}

func (f *fixture) book(t *testing.T, patientID string) AppointmentResponse {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID: patientID,
		ServiceID: f.service.ID.String(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[AppointmentResponse](t, rec)
}

func TestRegisterAndGetPatient(t *testing.T) {
	f := newFixture(t, 1)

	created := f.registerPatient(t)
	assert.Equal(t, "O+", created.BloodType)
	assert.Equal(t, "penicillin", created.Allergies)

	rec := f.do(t, http.MethodGet, "/patients/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[PatientResponse](t, rec)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Anna", got.FirstName)

	rec = f.do(t, http.MethodGet, "/patients/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/patients/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookAppointmentHappyPath(t *testing.T) {
	f := newFixture(t, 2)
	patient := f.registerPatient(t)

	appt := f.book(t, patient.ID.String())
	assert.Equal(t, string(clinic.StatusScheduled), appt.Status)
	assert.Equal(t, f.doctor.ID, appt.DoctorID)
	assert.Equal(t, f.service.ID, appt.ServiceID)

	rec := f.do(t, http.MethodGet, "/appointments/"+appt.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBookAppointmentNoAvailability(t *testing.T) {
	f := newFixture(t, 1)
	patient := f.registerPatient(t)
	f.book(t, patient.ID.String())

	rec := f.do(t, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID: patient.ID.String(),
		ServiceID: f.service.ID.String(),
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	errResp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "no_availability", errResp.Error)
}

func TestBookAppointmentUnknownService(t *testing.T) {
	f := newFixture(t, 1)
	patient := f.registerPatient(t)

	rec := f.do(t, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID: patient.ID.String(),
		ServiceID: "00000000-0000-0000-0000-000000000001",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelThenCompleteConflicts(t *testing.T) {
	f := newFixture(t, 1)
	patient := f.registerPatient(t)
	appt := f.book(t, patient.ID.String())

	rec := f.do(t, http.MethodPost, "/appointments/"+appt.ID.String()+"/cancel",
		CancelAppointmentRequest{Reason: "patient request"})
	require.Equal(t, http.StatusOK, rec.Code)
	cancelled := decode[AppointmentResponse](t, rec)
	assert.Equal(t, string(clinic.StatusCancelled), cancelled.Status)
	assert.Equal(t, "patient request", cancelled.CancelReason)

	rec = f.do(t, http.MethodPost, "/appointments/"+appt.ID.String()+"/complete",
		CompleteAppointmentRequest{Notes: "too late"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProcessPayment(t *testing.T) {
	f := newFixture(t, 1)
	patient := f.registerPatient(t)
	appt := f.book(t, patient.ID.String())

	rec := f.do(t, http.MethodPost, "/appointments/"+appt.ID.String()+"/payment", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	payment := decode[PaymentResponse](t, rec)
	assert.Equal(t, 150.00, payment.Amount)
	assert.Equal(t, string(clinic.PaymentProcessed), payment.Status)

	rec = f.do(t, http.MethodPost, "/appointments/"+appt.ID.String()+"/payment", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodGet, "/appointments/"+appt.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[AppointmentResponse](t, rec)
	require.NotNil(t, got.Payment)
	assert.Equal(t, payment.ID, got.Payment.ID)
}

func TestCreateResult(t *testing.T) {
	f := newFixture(t, 1)
	patient := f.registerPatient(t)

	rec := f.do(t, http.MethodPost, "/patients/"+patient.ID.String()+"/results", CreateResultRequest{
		DoctorID:    f.doctor.ID.String(),
		Type:        "lab",
		Title:       "bloodwork",
		Description: "all clear",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	result := decode[ResultResponse](t, rec)
	assert.Equal(t, "bloodwork", result.Title)

	// patient constructed outside registration has no record
	bare := clinic.NewPatient("No", "Record", "555-0000", "INS-0")
	f.reg.AddPatient(bare)
	rec = f.do(t, http.MethodPost, "/patients/"+bare.ID.String()+"/results", CreateResultRequest{
		DoctorID: f.doctor.ID.String(),
		Type:     "lab",
		Title:    "bloodwork",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListServicesAndDoctors(t *testing.T) {
	f := newFixture(t, 1)

	rec := f.do(t, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	services := decode[[]ServiceResponse](t, rec)
	require.Len(t, services, 1)
	assert.Equal(t, "General Consultation", services[0].Name)

	rec = f.do(t, http.MethodGet, "/services/"+f.service.ID.String()+"/doctors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doctors := decode[[]DoctorResponse](t, rec)
	require.Len(t, doctors, 1)
	assert.Equal(t, 1, doctors[0].OpenSlots)
	assert.Equal(t, "101", doctors[0].Room)

	// once the only slot is gone the doctor drops out of the listing
	patient := f.registerPatient(t)
	f.book(t, patient.ID.String())

	rec = f.do(t, http.MethodGet, "/services/"+f.service.ID.String()+"/doctors", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	doctors = decode[[]DoctorResponse](t, rec)
	assert.Empty(t, doctors)
}

func TestHealthEndpoints(t *testing.T) {
	f := newFixture(t, 1)

	rec := f.do(t, http.MethodGet, "/health/live", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decode[ReadinessResponse](t, rec)
	assert.Equal(t, "ok", ready.Status)
	assert.Equal(t, 1, ready.Registry["doctors"])

	empty := NewRouter(RouterConfig{
		Admin:    clinic.NewAdministrator("Front", "Desk", "555-0100", "08:00-18:00"),
		Registry: registry.New(),
		Env:      "test",
		Version:  "test",
	})
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	res := httptest.NewRecorder()
	empty.ServeHTTP(res, req)
	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
}
