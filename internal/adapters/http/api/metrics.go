// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rubriq/rubriq/pkg/metrics"
)

// MetricsHandler serves Prometheus text exposition.
type MetricsHandler struct {
	exposition http.Handler
}

// NewMetricsHandler creates a new metrics handler backed by the custom
// metrics registry.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{
		exposition: promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}),
	}
}

// HandleMetrics handles GET /metrics requests.
func (h *MetricsHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.exposition.ServeHTTP(w, r)
}
