package handlers

import (
	"encoding/json"
	"net/http"
)

// Stable machine-readable error codes returned to clients.
const (
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeInvalidPassword    = "INVALID_PASSWORD"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidProgress    = "INVALID_PROGRESS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Machine-readable error code
	// default: INVALID_EMAIL
	Error string `json:"error"`
}

// writeError sends a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: code})
}

// writeJSON sends a JSON success body with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
