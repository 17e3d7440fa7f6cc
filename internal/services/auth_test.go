package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/models"
	"github.com/kid-econ/progress-server/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		email        string
		password     string
		lookupEmail  string
		existingUser *models.User
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:        "successful signup",
			email:       "alice@example.com",
			password:    "pass1234",
			lookupEmail: "alice@example.com",
		},
		{
			name:        "email normalized before checks",
			email:       "  Alice@Example.COM ",
			password:    "pass1234",
			lookupEmail: "alice@example.com",
		},
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "pass1234",
			wantErr:  services.ErrInvalidEmail,
		},
		{
			name:     "password too short",
			email:    "alice@example.com",
			password: "abc1",
			wantErr:  services.ErrInvalidPassword,
		},
		{
			name:     "password without digit",
			email:    "alice@example.com",
			password: "onlyletters",
			wantErr:  services.ErrInvalidPassword,
		},
		{
			name:         "email already exists",
			email:        "bob@example.com",
			password:     "pass1234",
			lookupEmail:  "bob@example.com",
			existingUser: &models.User{ID: uuid.New(), Email: "bob@example.com"},
			wantErr:      services.ErrEmailAlreadyExists,
		},
		{
			name:        "reader error",
			email:       "eve@example.com",
			password:    "pass1234",
			lookupEmail: "eve@example.com",
			readerErr:   errors.New("storage error"),
			wantErr:     errors.New("storage error"),
		},
		{
			name:        "writer error",
			email:       "carol@example.com",
			password:    "pass1234",
			lookupEmail: "carol@example.com",
			writerErr:   errors.New("save error"),
			wantErr:     errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokenIssuer(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			if tt.lookupEmail != "" {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), tt.lookupEmail).
					Return(tt.existingUser, tt.readerErr)
			}
			if tt.existingUser == nil && tt.readerErr == nil && tt.lookupEmail != "" {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}
			if tt.wantErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), gomock.Any(), tt.lookupEmail).
					Return("JWT_TOKEN", nil)
			}

			token, user, err := svc.Signup(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "JWT_TOKEN", token)
			require.NotNil(t, user)
			assert.Equal(t, tt.lookupEmail, user.Email)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.NotEqual(t, tt.password, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.User
		readerErr error
		jwtErr    error
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "alice@example.com",
			password: password,
			user:     &models.User{ID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: password,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrongpass1",
			user:     &models.User{ID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  password,
			readerErr: errors.New("storage error"),
			wantErr:   errors.New("storage error"),
		},
		{
			name:     "token generation error",
			email:    "alice@example.com",
			password: password,
			user:     &models.User{ID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
			jwtErr:   errors.New("signing error"),
			wantErr:  errors.New("signing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokenIssuer(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.password == password {
				token := "JWT_TOKEN"
				if tt.jwtErr != nil {
					token = ""
				}
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Email).
					Return(token, tt.jwtErr)
			}

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "JWT_TOKEN", token)
			require.NotNil(t, user)
			assert.Equal(t, userID, user.ID)
		})
	}
}
