package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/logger"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the original deployment's hashing strength.
const bcryptCost = 12

// Error variables
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) error
}

// TokenIssuer defines an interface for generating signed tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Signup validates the credentials, creates the account and returns a
// fresh token together with the created user. The email is normalized
// (trimmed, lowercased) before validation and the uniqueness check.
func (svc *AuthService) Signup(ctx context.Context, email, password string) (string, *models.User, error) {
	email = validation.NormalizeEmail(email)

	if !validation.ValidateEmail(email) {
		return "", nil, ErrInvalidEmail
	}
	if !validation.ValidatePassword(password) {
		return "", nil, ErrInvalidPassword
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Infow("signup rejected, email taken", "email", email)
		return "", nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, &user, nil
}

// Login authenticates a user and returns a fresh token. A missing account
// and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = validation.NormalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login rejected, unknown email", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected, wrong password", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
