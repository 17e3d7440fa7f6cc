package storage

import (
	"context"

	"github.com/kid-econ/progress-server/internal/models"
)

// Store persists the whole database document. The contract is deliberately
// coarse: callers load the full document, mutate it in memory, and save it
// back. Concurrent load-modify-save cycles are not serialized; the last
// save wins.
type Store interface {
	// Load returns the persisted document, creating it with empty
	// defaults if it does not exist yet.
	Load(ctx context.Context) (*models.Database, error)

	// Save overwrites the persisted document.
	Save(ctx context.Context, db *models.Database) error
}
