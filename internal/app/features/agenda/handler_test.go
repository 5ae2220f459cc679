package agenda_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"projetex/internal/app/features/agenda"
	"projetex/internal/app/system/auth"
	"projetex/internal/domain/models"
	"projetex/internal/testutil"
)

func newTestHandler(t *testing.T) (*agenda.Handler, *auth.Identity) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(context.Background(), "Ana", "Souza", "ana@example.com")
	id := &auth.Identity{ID: u.ID.Hex(), Nome: u.Nome, Email: u.Email}
	return agenda.NewHandler(db, zap.NewNop()), id
}

func TestCreateAndList(t *testing.T) {
	h, id := newTestHandler(t)

	body := `{"titulo":"Reunião de planejamento","inicio":"2025-10-01T14:00:00Z","fim":"2025-10-01T15:00:00Z"}`
	req := httptest.NewRequest("POST", "/agenda", strings.NewReader(body))
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created models.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ResponsavelID.Hex() != id.ID {
		t.Error("entry not owned by the authenticated user")
	}

	req = httptest.NewRequest("GET", "/agenda", nil)
	req = testutil.AuthedRequest(req, id)
	rec = httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var got []models.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Titulo != "Reunião de planejamento" {
		t.Errorf("list = %+v", got)
	}
}

func TestCreateInvertedRange(t *testing.T) {
	h, id := newTestHandler(t)

	body := `{"titulo":"Impossível","inicio":"2025-10-01T15:00:00Z","fim":"2025-10-01T14:00:00Z"}`
	req := httptest.NewRequest("POST", "/agenda", strings.NewReader(body))
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestListIsScopedToOwner(t *testing.T) {
	h, id := newTestHandler(t)

	body := `{"titulo":"Minha reunião","inicio":"2025-10-01T14:00:00Z","fim":"2025-10-01T15:00:00Z"}`
	req := httptest.NewRequest("POST", "/agenda", strings.NewReader(body))
	req = testutil.AuthedRequest(req, id)
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	other := testutil.TestIdentity()
	req = httptest.NewRequest("GET", "/agenda", nil)
	req = testutil.AuthedRequest(req, other)
	rec = httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var got []models.CalendarEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("other user sees %d entries, want 0", len(got))
	}
}
