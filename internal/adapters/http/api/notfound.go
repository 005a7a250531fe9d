// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// supportedOperations is advertised in every not-found response.
var supportedOperations = []string{
	"POST /analyze",
	"GET /dimensions",
	"GET /healthz",
}

// NotFoundHandler answers unknown routes and wrong methods.
type NotFoundHandler struct{}

// NewNotFoundHandler creates a new not-found handler.
func NewNotFoundHandler() *NotFoundHandler {
	return &NotFoundHandler{}
}

type notFoundResponse struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Operations []string `json:"operations"`
}

// HandleNotFound handles every route no other handler claimed.
func (h *NotFoundHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w)
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, notFoundResponse{
		Code:       "not_found",
		Message:    "route not found",
		Operations: supportedOperations,
	})
}
