package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kid-econ/progress-server/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Email: "kid@example.com"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectedErr      string
		expectNextCalled bool
	}{
		{
			name: "MissingHeader",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrNoToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedErr:    "UNAUTHORIZED",
		},
		{
			name: "MalformedToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, jwt.ErrTokenMalformed)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedErr:    "INVALID_TOKEN",
		},
		{
			name: "ExpiredToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("staletoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "staletoken").
					Return(nil, jwt.ErrTokenExpired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedErr:    "INVALID_TOKEN",
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			// Wrap a next handler to check if it was called and what
			// claims it sees.
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got := ClaimsFromContext(r.Context())
				require.NotNil(t, got)
				assert.Equal(t, userID, got.UserID)
				assert.Equal(t, "kid@example.com", got.Email)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedErr != "" {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedErr, resp["error"])
			}
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, ClaimsFromContext(req.Context()))
}
