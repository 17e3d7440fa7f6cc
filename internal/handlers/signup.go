package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/services"
)

// Signupper defines the interface that the signup service must implement.
type Signupper interface {
	Signup(ctx context.Context, email, password string) (string, *models.User, error)
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: kid@example.com
	Email string `json:"email"`

	// Password, 8-72 chars with at least one letter and one digit
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// Bearer token for the new session
	Token string `json:"token"`
	// The created account
	User models.PublicUser `json:"user"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Creates an account for a unique email and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.SignupResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "INVALID_EMAIL or INVALID_PASSWORD"
// @Failure 409 {object} handlers.ErrorResponse "EMAIL_ALREADY_EXISTS"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signupper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidEmail)
			return
		}

		token, user, err := svc.Signup(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				writeError(w, http.StatusBadRequest, CodeInvalidEmail)
			case errors.Is(err, services.ErrInvalidPassword):
				writeError(w, http.StatusBadRequest, CodeInvalidPassword)
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusConflict, CodeEmailAlreadyExists)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, CodeInternalError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Token: token,
			User:  user.Public(),
		})
	}
}
