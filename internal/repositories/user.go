package repositories

import (
	"context"

	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/storage"
)

// UserReadRepository answers user lookups against the document store.
type UserReadRepository struct {
	store storage.Store
}

func NewUserReadRepository(store storage.Store) *UserReadRepository {
	return &UserReadRepository{store: store}
}

// GetByEmail returns the user with the given (already normalized) email,
// or nil if no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	db, err := r.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("load database", "op", "user.GetByEmail", "error", err)
		return nil, err
	}

	for i := range db.Users {
		if db.Users[i].Email == email {
			user := db.Users[i]
			logger.Log.Infow("user lookup", "op", "user.GetByEmail", "email", email, "found", true)
			return &user, nil
		}
	}

	logger.Log.Infow("user lookup", "op", "user.GetByEmail", "email", email, "found", false)
	return nil, nil
}

// UserWriteRepository appends users to the document store.
type UserWriteRepository struct {
	store storage.Store
}

func NewUserWriteRepository(store storage.Store) *UserWriteRepository {
	return &UserWriteRepository{store: store}
}

// Save appends the user and seeds a null progress entry for it, then
// rewrites the whole document.
func (r *UserWriteRepository) Save(ctx context.Context, user models.User) error {
	db, err := r.store.Load(ctx)
	if err != nil {
		logger.Log.Errorw("load database", "op", "user.Save", "error", err)
		return err
	}

	db.Users = append(db.Users, user)
	if _, ok := db.ProgressByUserID[user.ID]; !ok {
		db.ProgressByUserID[user.ID] = nil
	}

	err = r.store.Save(ctx, db)
	logger.Log.Infow("user saved", "op", "user.Save", "user_id", user.ID, "email", user.Email, "error", err)
	return err
}
