package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"projetex/internal/app/system/auth"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestIdentity returns an authenticated identity for handler tests.
func TestIdentity() *auth.Identity {
	return &auth.Identity{
		ID:    primitive.NewObjectID().Hex(),
		Nome:  "Teste",
		Email: "teste@example.com",
		Cargo: "analista",
	}
}

// AuthedRequest attaches a test identity to the request, bypassing the
// bearer middleware the way handlers see it in production.
func AuthedRequest(r *http.Request, id *auth.Identity) *http.Request {
	if id == nil {
		id = TestIdentity()
	}
	return auth.WithTestUser(r, id)
}
