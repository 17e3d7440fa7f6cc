package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/validation"
)

// ErrInvalidProgress is returned when the submitted progress payload is
// not a JSON object and therefore cannot be sanitized.
var ErrInvalidProgress = errors.New("invalid progress payload")

// ProgressReader defines read-only operations for progress records.
type ProgressReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProgressRecord, error)
}

// ProgressWriter defines write operations for progress records.
type ProgressWriter interface {
	Save(ctx context.Context, userID uuid.UUID, progress *models.ProgressRecord) error
}

// ProgressService reads and stores per-user game progress.
type ProgressService struct {
	reader ProgressReader
	writer ProgressWriter
}

// NewProgressService creates a new ProgressService instance.
func NewProgressService(reader ProgressReader, writer ProgressWriter) *ProgressService {
	return &ProgressService{reader: reader, writer: writer}
}

// Get returns the user's stored progress, or nil if none was saved yet.
func (svc *ProgressService) Get(ctx context.Context, userID uuid.UUID) (*models.ProgressRecord, error) {
	progress, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load progress", "user_id", userID, "err", err)
		return nil, err
	}
	return progress, nil
}

// Put sanitizes the raw payload and stores the result, returning the
// record that was actually persisted.
func (svc *ProgressService) Put(ctx context.Context, userID uuid.UUID, raw any) (*models.ProgressRecord, error) {
	progress := validation.SanitizeProgress(raw)
	if progress == nil {
		return nil, ErrInvalidProgress
	}

	if err := svc.writer.Save(ctx, userID, progress); err != nil {
		logger.Log.Errorw("failed to save progress", "user_id", userID, "err", err)
		return nil, err
	}

	return progress, nil
}
