package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/kid-econ/progress-server/internal/models"
)

// MemoryStore holds the document in memory. It mirrors FileStore's
// semantics, including handing out independent copies on Load, and exists
// so services and repositories can be tested without touching disk.
type MemoryStore struct {
	mu sync.Mutex
	db *models.Database
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{db: models.NewDatabase()}
}

// Load returns a deep copy of the current document.
func (s *MemoryStore) Load(ctx context.Context) (*models.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.db)
}

// Save replaces the current document with a deep copy of db.
func (s *MemoryStore) Save(ctx context.Context, db *models.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied, err := clone(db)
	if err != nil {
		return err
	}
	s.db = copied
	return nil
}

// clone round-trips through JSON, which is exactly what the file store
// does to a document.
func clone(db *models.Database) (*models.Database, error) {
	raw, err := json.Marshal(db)
	if err != nil {
		return nil, err
	}
	var out models.Database
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	out.Normalize()
	return &out, nil
}
