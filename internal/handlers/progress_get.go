package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/middlewares"
	"github.com/kid-econ/progress-server/internal/models"
)

// ProgressGetter defines the interface that the progress read service must implement.
type ProgressGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProgressRecord, error)
}

// GetProgressResponse wraps the stored progress record
// swagger:model GetProgressResponse
type GetProgressResponse struct {
	// The stored record, or null if the user never saved progress
	Progress *models.ProgressRecord `json:"progress"`
}

// NewGetProgressHandler returns an HTTP handler that reads the caller's progress.
// @Summary Get progress
// @Description Returns the authenticated user's saved progress, or null
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.GetProgressResponse "Stored progress (possibly null)"
// @Failure 401 {object} handlers.ErrorResponse "UNAUTHORIZED or INVALID_TOKEN"
// @Router /progress [get]
func NewGetProgressHandler(svc ProgressGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, CodeUnauthorized)
			return
		}

		progress, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, CodeInternalError)
			return
		}

		writeJSON(w, http.StatusOK, GetProgressResponse{Progress: progress})
	}
}
