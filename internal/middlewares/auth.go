package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kid-econ/progress-server/internal/jwt"
	"github.com/kid-econ/progress-server/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var claimsKey = contextKey{}

// ClaimsFromContext retrieves the verified claims stored by AuthMiddleware.
// Returns nil if the request did not pass through it.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// ContextWithClaims stores verified claims in the context.
func ContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// AuthMiddleware returns a middleware that verifies the bearer token and
// stores its claims in the request context. A missing or non-bearer
// Authorization header yields UNAUTHORIZED; a header that carries a
// malformed, tampered or expired token yields INVALID_TOKEN.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeAuthError(w, "UNAUTHORIZED")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					logger.Log.Infow("rejected expired token")
				}
				writeAuthError(w, "INVALID_TOKEN")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": code})
}
