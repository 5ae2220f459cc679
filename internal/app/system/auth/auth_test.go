package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"projetex/internal/domain/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T, expiry time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(testSecret, expiry, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return m
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour, zap.NewNop()); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := newManager(t, time.Hour)

	tok, err := m.Issue("Ana@Empresa.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	email, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if email != "ana@empresa.com" {
		t.Errorf("Verify() subject = %q, want %q", email, "ana@empresa.com")
	}
}

func TestVerify_Expired(t *testing.T) {
	// Negative lifetime issues tokens that are already expired.
	m := newManager(t, -time.Minute)

	tok, err := m.Issue("ana@empresa.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(expired) error = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m := newManager(t, time.Hour)
	other, err := NewTokenManager("another-secret-that-is-long-enough!", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	tok, err := other.Issue("ana@empresa.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := m.Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(wrong secret) error = %v, want ErrInvalidToken", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := newManager(t, time.Hour)
	if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(garbage) error = %v, want ErrInvalidToken", err)
	}
}

func TestHashCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3nh4-forte")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3nh4-forte" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3nh4-forte") {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword(hash, "errada") {
		t.Error("CheckPassword() = true for wrong password")
	}
	if CheckPassword("", "qualquer") {
		t.Error("CheckPassword() = true for empty hash")
	}
}

// fakeFetcher serves a single user by email.
type fakeFetcher struct {
	user *models.User
}

func (f *fakeFetcher) FetchByEmail(_ context.Context, email string) (*models.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, errors.New("not found")
}

func TestRequireAuth(t *testing.T) {
	m := newManager(t, time.Hour)
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Nome:      "Ana",
		Sobrenome: "Souza",
		Email:     "ana@empresa.com",
		Cargo:     "analista",
	}
	fetch := &fakeFetcher{user: user}

	var got *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
		w.WriteHeader(http.StatusOK)
	})
	protected := m.RequireAuth(fetch)(next)

	t.Run("valid token", func(t *testing.T) {
		tok, _ := m.Issue(user.Email)
		req := httptest.NewRequest("GET", "/projetos", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got == nil || got.Email != user.Email || got.Nome != "Ana Souza" {
			t.Errorf("identity = %+v, want Ana Souza <ana@empresa.com>", got)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projetos", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if rec.Header().Get("WWW-Authenticate") != "Bearer" {
			t.Errorf("missing WWW-Authenticate header")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		tok, _ := m.Issue("outro@empresa.com")
		req := httptest.NewRequest("GET", "/projetos", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
