package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failures. Both surface to clients as INVALID_TOKEN;
// the split exists so callers can tell a stale session from a forged one.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed or signature invalid")
	ErrNoToken        = errors.New("authorization header missing or not a bearer token")
)

// Claims are the identity fields embedded in every issued token.
type Claims struct {
	UserID uuid.UUID
	Email  string
}

// JWT issues and verifies HS256-signed bearer tokens. Tokens are
// stateless: there is no revocation, a token stays valid until it expires
// or the secret rotates.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.secretKey = secret }
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.exp = exp }
}

// New creates a JWT service. The default lifetime is 30 days.
func New(opts ...Opt) *JWT {
	j := &JWT{exp: 30 * 24 * time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token embedding the user's id and email.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"exp":     now.Add(j.exp).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and verifies the token string, returning the embedded
// identity. It fails with ErrTokenExpired for a well-formed but stale
// token and ErrTokenMalformed for everything else.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrTokenMalformed
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	email, _ := claims["email"].(string)

	return &Claims{UserID: userID, Email: email}, nil
}

// Validate checks the token without returning its claims.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the bearer token from the Authorization
// header. A missing header or a non-bearer scheme is ErrNoToken, which
// callers map to UNAUTHORIZED rather than INVALID_TOKEN.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrNoToken
	}

	return parts[1], nil
}
