package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/middlewares"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/services"
)

// ProgressPutter defines the interface that the progress write service must implement.
type ProgressPutter interface {
	Put(ctx context.Context, userID uuid.UUID, raw any) (*models.ProgressRecord, error)
}

// PutProgressRequest represents the JSON body for saving progress
// swagger:model PutProgressRequest
type PutProgressRequest struct {
	// Arbitrary progress object; it is sanitized field by field before storage
	// required: true
	Progress any `json:"progress"`
}

// PutProgressResponse returns the record as persisted
// swagger:model PutProgressResponse
type PutProgressResponse struct {
	OK bool `json:"ok"`
	// The sanitized record that was stored
	Progress *models.ProgressRecord `json:"progress"`
}

// NewPutProgressHandler returns an HTTP handler that stores the caller's progress.
// @Summary Save progress
// @Description Sanitizes and stores the submitted progress object wholesale
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param putProgressRequest body handlers.PutProgressRequest true "Progress payload"
// @Success 200 {object} handlers.PutProgressResponse "Sanitized record stored"
// @Failure 400 {object} handlers.ErrorResponse "INVALID_PROGRESS"
// @Failure 401 {object} handlers.ErrorResponse "UNAUTHORIZED or INVALID_TOKEN"
// @Router /progress [put]
func NewPutProgressHandler(svc ProgressPutter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, CodeUnauthorized)
			return
		}

		var req PutProgressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, CodeInvalidProgress)
			return
		}

		progress, err := svc.Put(r.Context(), claims.UserID, req.Progress)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidProgress):
				writeError(w, http.StatusBadRequest, CodeInvalidProgress)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, CodeInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, PutProgressResponse{OK: true, Progress: progress})
	}
}
