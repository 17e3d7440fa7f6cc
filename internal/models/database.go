package models

import "github.com/google/uuid"

// Database is the whole persisted document: every user and every
// progress record. It is loaded and saved wholesale on each access.
type Database struct {
	Users            []User                        `json:"users"`
	ProgressByUserID map[uuid.UUID]*ProgressRecord `json:"progressByUserId"`
}

// NewDatabase returns an empty document with both containers initialized,
// so a fresh file marshals as {"users": [], "progressByUserId": {}}.
func NewDatabase() *Database {
	return &Database{
		Users:            []User{},
		ProgressByUserID: map[uuid.UUID]*ProgressRecord{},
	}
}

// Normalize repairs missing containers after unmarshalling a document
// that was written without them.
func (db *Database) Normalize() {
	if db.Users == nil {
		db.Users = []User{}
	}
	if db.ProgressByUserID == nil {
		db.ProgressByUserID = map[uuid.UUID]*ProgressRecord{}
	}
}
