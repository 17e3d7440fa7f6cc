package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepositories_SaveAndGet(t *testing.T) {
	store := storage.NewMemoryStore()
	reader := NewProgressReadRepository(store)
	writer := NewProgressWriteRepository(store)
	ctx := context.Background()

	userID := uuid.New()
	record := &models.ProgressRecord{
		PlayerName:   "kid",
		Cash:         1500,
		Results:      []models.ResultEntry{},
		OwnedItemIDs: []string{},
	}
	require.NoError(t, writer.Save(ctx, userID, record))

	got, err := reader.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "kid", got.PlayerName)
	assert.Equal(t, float64(1500), got.Cash)
}

func TestProgressReadRepository_MissingAndNullBothReadAsNil(t *testing.T) {
	store := storage.NewMemoryStore()
	reader := NewProgressReadRepository(store)
	ctx := context.Background()

	// Missing key.
	got, err := reader.GetByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)

	// Explicit null entry, as seeded by signup.
	userID := uuid.New()
	db, err := store.Load(ctx)
	require.NoError(t, err)
	db.ProgressByUserID[userID] = nil
	require.NoError(t, store.Save(ctx, db))

	got, err = reader.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProgressWriteRepository_OverwritesPrevious(t *testing.T) {
	store := storage.NewMemoryStore()
	reader := NewProgressReadRepository(store)
	writer := NewProgressWriteRepository(store)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, writer.Save(ctx, userID, &models.ProgressRecord{Cash: 1000}))
	require.NoError(t, writer.Save(ctx, userID, &models.ProgressRecord{Cash: 250}))

	got, err := reader.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, float64(250), got.Cash)
}
