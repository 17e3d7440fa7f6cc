package handlers

import (
	"net/http"
	"time"
)

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// Always true when the service is up
	OK bool `json:"ok"`
	// Current server time, RFC3339
	Now string `json:"now"`
}

// NewHealthHandler returns an HTTP handler for the liveness probe.
// @Summary Health check
// @Description Reports that the service is up, with the current server time
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			OK:  true,
			Now: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
