package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kid-econ/progress-server/internal/models"
)

// FileStore keeps the document as a single indented JSON file. The mutex
// only guards individual Load/Save calls against torn writes; it does not
// make a load-modify-save cycle atomic.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the whole document. A missing file is created with empty
// defaults first; an unreadable or corrupt file is an error the caller is
// expected to treat as fatal.
func (s *FileStore) Load(ctx context.Context) (*models.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		db := models.NewDatabase()
		if err := s.write(db); err != nil {
			return nil, err
		}
		return db, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var db models.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	db.Normalize()
	return &db, nil
}

// Save serializes and overwrites the whole document.
func (s *FileStore) Save(ctx context.Context, db *models.Database) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(db)
}

// write marshals db and replaces the file via a temp file and rename, so
// a crash mid-write never leaves a half-written document behind.
func (s *FileStore) write(db *models.Database) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal database: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
