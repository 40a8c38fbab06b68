package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicware/clinic-management/internal/clinic"
	"github.com/clinicware/clinic-management/internal/registry"
)

type RouterConfig struct {
	Admin    *clinic.Administrator
	Registry *registry.Registry
	Env      string
	Version  string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	health := NewHealthHandler(cfg.Registry, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Post("/patients", registerPatientHandler(cfg.Admin, cfg.Registry))
	r.Get("/patients/{id}", getPatientHandler(cfg.Registry))
	r.Post("/patients/{id}/results", createResultHandler(cfg.Registry))

	r.Post("/appointments", createAppointmentHandler(cfg.Admin, cfg.Registry))
	r.Get("/appointments/{id}", getAppointmentHandler(cfg.Registry))
	r.Post("/appointments/{id}/cancel", cancelAppointmentHandler(cfg.Registry))
	r.Post("/appointments/{id}/complete", completeAppointmentHandler(cfg.Registry))
	r.Post("/appointments/{id}/payment", processPaymentHandler(cfg.Admin, cfg.Registry))

	r.Get("/services", listServicesHandler(cfg.Registry))
	r.Get("/services/{id}/doctors", listServiceDoctorsHandler(cfg.Registry))

	return r
}
