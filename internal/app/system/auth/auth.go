// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/normalize"
	"projetex/internal/app/system/timeouts"
	"projetex/internal/domain/models"
)

const bcryptCost = 12

// TokenType is the token_type value returned by the /token endpoint.
const TokenType = "bearer"

// ErrInvalidToken is returned by Verify for any token that cannot be
// trusted: bad signature, wrong algorithm, expired, or missing subject.
var ErrInvalidToken = errors.New("invalid or expired token")

/*─────────────────────────────────────────────────────────────────────────────*
| Password hashing                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// An empty hash never matches.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Token manager                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// TokenManager issues and verifies HS256 session tokens. The subject
// claim carries the user's email, matching what the login flow stores.
type TokenManager struct {
	secret []byte
	expiry time.Duration
	log    *zap.Logger
}

// NewTokenManager builds a TokenManager from the configured signing
// secret and token lifetime.
func NewTokenManager(secret string, expiry time.Duration, logger *zap.Logger) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is empty; provide ≥32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("token secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if expiry <= 0 {
		expiry = 60 * time.Minute
	}
	return &TokenManager{secret: []byte(secret), expiry: expiry, log: logger}, nil
}

// Issue creates a signed token whose subject is the given email and
// whose expiry is now + the configured lifetime.
func (m *TokenManager) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   normalize.Email(email),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the subject
// email. Only HS256 is accepted; anything else fails with
// ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Current-user context                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// Identity is the verified caller injected into r.Context() by
// RequireAuth.
type Identity struct {
	ID    string
	Nome  string
	Email string
	Cargo string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated identity and a "found?" flag.
func CurrentUser(r *http.Request) (*Identity, bool) {
	u, ok := r.Context().Value(currentUserKey).(*Identity)
	return u, ok
}

func withUser(r *http.Request, u *Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects an identity directly, bypassing token
// verification. For handler tests only.
func WithTestUser(r *http.Request, u *Identity) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Bearer middleware                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

// UserFetcher loads fresh user data for each verified token, so deleted
// accounts lose access as soon as their record disappears.
type UserFetcher interface {
	FetchByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAuth returns middleware that enforces a valid bearer token and
// places the caller's Identity in the request context.
func (m *TokenManager) RequireAuth(fetch UserFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httpjson.Unauthorized(w, "missing bearer token")
				return
			}

			email, err := m.Verify(raw)
			if err != nil {
				httpjson.Unauthorized(w, "could not validate credentials")
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			defer cancel()

			u, err := fetch.FetchByEmail(ctx, email)
			if err != nil || u == nil {
				httpjson.Unauthorized(w, "could not validate credentials")
				return
			}

			next.ServeHTTP(w, withUser(r, &Identity{
				ID:    u.ID.Hex(),
				Nome:  u.FullName(),
				Email: u.Email,
				Cargo: u.Cargo,
			}))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer …" header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
