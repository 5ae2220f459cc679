package token_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"projetex/internal/app/features/token"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/auth"
	"projetex/internal/domain/models"
	"projetex/internal/testutil"
)

const testPassword = "segredo123"

func newTestHandler(t *testing.T) (*token.Handler, models.User) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	tokens, err := auth.NewTokenManager("test-secret-key-for-token-tests-0123", time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store := userstore.New(db)
	u, err := store.Create(context.Background(), models.User{
		Nome:      "Ana",
		Sobrenome: "Souza",
		Email:     "ana@example.com",
		SenhaHash: hash,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return token.NewHandler(db, tokens, zap.NewNop()), u
}

func loginRequest(email, password string) *http.Request {
	form := url.Values{"username": {email}, "password": {password}}
	req := httptest.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIssue(t *testing.T) {
	h, u := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Issue(rec, loginRequest("ana@example.com", testPassword))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ID          string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TokenType != "bearer" {
		t.Errorf("token_type = %q", got.TokenType)
	}
	if got.ID != u.ID.Hex() {
		t.Errorf("id = %q, want %q", got.ID, u.ID.Hex())
	}
	if got.AccessToken == "" {
		t.Fatal("empty access_token")
	}
}

func TestIssueWrongPassword(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Issue(rec, loginRequest("ana@example.com", "senha-errada"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Error("missing WWW-Authenticate header")
	}
}

func TestIssueUnknownEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Issue(rec, loginRequest("ninguem@example.com", testPassword))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestIssueRateLimited(t *testing.T) {
	h, _ := newTestHandler(t)

	// The per-email window allows 5 attempts; the 6th gets throttled.
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		h.Issue(rec, loginRequest("ana@example.com", "senha-errada"))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status = %d, want 401", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.Issue(rec, loginRequest("ana@example.com", "senha-errada"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}

func TestIssueRejectsJSONBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/token",
		strings.NewReader(`{"username":"ana@example.com","password":"segredo123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Issue(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
