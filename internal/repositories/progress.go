package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/storage"
)

// ProgressReadRepository answers progress lookups against the document store.
type ProgressReadRepository struct {
	store storage.Store
}

func NewProgressReadRepository(store storage.Store) *ProgressReadRepository {
	return &ProgressReadRepository{store: store}
}

// GetByUserID returns the user's progress record. A missing key and an
// explicit null entry both read as nil.
func (r *ProgressReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProgressRecord, error) {
	db, err := r.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("load database", "op", "progress.GetByUserID", "error", err)
		return nil, err
	}

	progress := db.ProgressByUserID[userID]
	logger.Log.Infow("progress lookup", "op", "progress.GetByUserID", "user_id", userID, "found", progress != nil)
	return progress, nil
}

// ProgressWriteRepository stores progress records in the document store.
type ProgressWriteRepository struct {
	store storage.Store
}

func NewProgressWriteRepository(store storage.Store) *ProgressWriteRepository {
	return &ProgressWriteRepository{store: store}
}

// Save replaces the user's progress record and rewrites the whole document.
func (r *ProgressWriteRepository) Save(ctx context.Context, userID uuid.UUID, progress *models.ProgressRecord) error {
	db, err := r.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("load database", "op", "progress.Save", "error", err)
		return err
	}

	db.ProgressByUserID[userID] = progress

	err = r.store.Save(ctx, db)
	logger.Log.Infow("progress saved", "op", "progress.Save", "user_id", userID, "error", err)
	return err
}
