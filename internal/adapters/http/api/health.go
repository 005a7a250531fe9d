// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"runtime"
	"time"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	service string
	version string
	commit  string
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service, version, commit string) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
		commit:  commit,
		started: time.Now(),
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"goVersion"`
	Uptime    string `json:"uptime"`
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Service:   h.service,
		Version:   h.version,
		Commit:    h.commit,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.started).Round(time.Second).String(),
	})
}
