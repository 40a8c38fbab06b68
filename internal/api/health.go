package api

import (
	"net/http"

	"github.com/clinicware/clinic-management/internal/registry"
)

type HealthHandler struct {
	reg     *registry.Registry
	env     string
	version string
}

func NewHealthHandler(reg *registry.Registry, env, version string) *HealthHandler {
	return &HealthHandler{
		reg:     reg,
		env:     env,
		version: version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status   string         `json:"status"`
	Version  string         `json:"version,omitempty"`
	Env      string         `json:"env,omitempty"`
	Registry map[string]int `json:"registry"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness reports ok once the catalog holds something bookable.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	patients, doctors, services, appointments := h.reg.Counts()

	status := "ok"
	if doctors == 0 || services == 0 {
		status = "degraded"
	}

	resp := ReadinessResponse{
		Status:  status,
		Version: h.version,
		Env:     h.env,
		Registry: map[string]int{
			"patients":     patients,
			"doctors":      doctors,
			"services":     services,
			"appointments": appointments,
		},
	}

	httpStatus := http.StatusOK
	if status != "ok" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, resp)
}
