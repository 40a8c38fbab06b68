package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/registry"
)

func registerPatientHandler(admin *clinic.Administrator, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		patient := admin.RegisterPatient(req.FirstName, req.LastName, req.Phone, req.Insurance, req.BloodType, req.Allergies)
		reg.AddPatient(patient)

		writeJSON(w, http.StatusCreated, toPatientResponse(patient))
	}
}

func getPatientHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r, "id")
		if !ok {
			return
		}

		patient, err := reg.GetPatient(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(patient))
	}
}

func createAppointmentHandler(admin *clinic.Administrator, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		patientID, err := uuid.Parse(req.PatientID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_patient_id", "patient_id must be a valid UUID")
			return
		}

		serviceID, err := uuid.Parse(req.ServiceID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_service_id", "service_id must be a valid UUID")
			return
		}

		patient, err := reg.GetPatient(patientID)
		if err != nil {
			writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
			return
		}

		service, err := reg.GetService(serviceID)
		if err != nil {
			writeError(w, http.StatusNotFound, "service_not_found", err.Error())
			return
		}

		appt, err := admin.CreateAppointment(patient, service)
		if err != nil {
			handleBookingError(w, err)
			return
		}
		reg.AddAppointment(appt)

		writeJSON(w, http.StatusCreated, toAppointmentResponse(appt))
	}
}

func getAppointmentHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r, "id")
		if !ok {
			return
		}

		appt, err := reg.GetAppointment(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(appt))
	}
}

func cancelAppointmentHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r, "id")
		if !ok {
			return
		}

		var req CancelAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		appt, err := reg.GetAppointment(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
			return
		}

		if err := appt.Cancel(req.Reason); err != nil {
			writeError(w, http.StatusConflict, "invalid_status_transition", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(appt))
	}
}

func completeAppointmentHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r, "id")
		if !ok {
			return
		}

		var req CompleteAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		appt, err := reg.GetAppointment(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
			return
		}

		if err := appt.Complete(req.Notes); err != nil {
			writeError(w, http.StatusConflict, "invalid_status_transition", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(appt))
	}
}

func processPaymentHandler(admin *clinic.Administrator, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r, "id")
		if !ok {
			return
		}

		appt, err := reg.GetAppointment(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
			return
		}

		payment, err := admin.ProcessPayment(appt)
		if err != nil {
			if errors.Is(err, clinic.ErrAlreadyPaid) {
				writeError(w, http.StatusConflict, "already_paid", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, toPaymentResponse(payment))
	}
}

func createResultHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID, ok := parseIDParam(w, r, "id")
		if !ok {
			return
		}

		var req CreateResultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		doctorID, err := uuid.Parse(req.DoctorID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_doctor_id", "doctor_id must be a valid UUID")
			return
		}

		patient, err := reg.GetPatient(patientID)
		if err != nil {
			writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
			return
		}

		doctor, err := reg.GetDoctor(doctorID)
		if err != nil {
			writeError(w, http.StatusNotFound, "doctor_not_found", err.Error())
			return
		}

		result, err := doctor.CreateResult(patient, req.Type, req.Title, req.Description)
		if err != nil {
			if errors.Is(err, clinic.ErrNoMedicalRecord) {
				writeError(w, http.StatusUnprocessableEntity, "no_medical_record", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, ResultResponse{
			ID:          result.ID,
			Type:        result.Type,
			Title:       result.Title,
			Description: result.Description,
			CreatedAt:   result.CreatedAt,
		})
	}
}

func listServicesHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := reg.Services()
		out := make([]ServiceResponse, 0, len(services))
		for _, s := range services {
			out = append(out, ServiceResponse{
				ID:       s.ID,
				Name:     s.Name,
				Cost:     s.Cost,
				Duration: s.Duration.String(),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listServiceDoctorsHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(w, r, "id")
		if !ok {
			return
		}

		service, err := reg.GetService(id)
		if err != nil {
			writeError(w, http.StatusNotFound, "service_not_found", err.Error())
			return
		}

		doctors := service.AvailableDoctors()
		out := make([]DoctorResponse, 0, len(doctors))
		for _, d := range doctors {
			out = append(out, toDoctorResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, clinic.ErrPatientNotFound):
		writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
	case errors.Is(err, clinic.ErrServiceNotFound):
		writeError(w, http.StatusNotFound, "service_not_found", err.Error())
	case errors.Is(err, clinic.ErrNoAvailability):
		writeError(w, http.StatusConflict, "no_availability", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_"+name, name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}
