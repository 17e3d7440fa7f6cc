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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: kid@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token for the session
	Token string `json:"token"`
	// The authenticated account
	User models.PublicUser `json:"user"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Authenticates an email/password pair and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 401 {object} handlers.ErrorResponse "INVALID_CREDENTIALS"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusUnauthorized, CodeInvalidCredentials)
			return
		}

		token, user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, CodeInvalidCredentials)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, CodeInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Token: token,
			User:  user.Public(),
		})
	}
}
