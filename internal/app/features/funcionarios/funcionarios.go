// internal/app/features/funcionarios/funcionarios.go
package funcionarios

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/auth"
	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/timeouts"
	"projetex/internal/domain/models"
)

// Create handles POST /funcionarios, the public signup.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Senha)
	if err != nil {
		h.Log.Error("failed to hash password", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create funcionário")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.Create(ctx, models.User{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		SenhaHash: hash,
		Cargo:     req.Cargo,
		Setor:     req.Setor,
	})
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		httpjson.Error(w, http.StatusConflict, "já existe um funcionário com este email")
		return
	}
	if err != nil {
		h.Log.Error("failed to create funcionário", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create funcionário")
		return
	}

	httpjson.Respond(w, http.StatusCreated, u)
}

// List handles GET /funcionarios.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("failed to list funcionários", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list funcionários")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpjson.Respond(w, http.StatusOK, users)
}

// Get handles GET /funcionarios/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, userstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "funcionário não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to load funcionário", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load funcionário")
		return
	}
	httpjson.Respond(w, http.StatusOK, u)
}

// Update handles PUT /funcionarios/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.UpdateByID(ctx, id, userstore.Update{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Cargo:     req.Cargo,
		Setor:     req.Setor,
	})
	switch {
	case errors.Is(err, userstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "funcionário não encontrado")
		return
	case errors.Is(err, userstore.ErrDuplicateEmail):
		httpjson.Error(w, http.StatusConflict, "já existe um funcionário com este email")
		return
	case err != nil:
		h.Log.Error("failed to update funcionário", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not update funcionário")
		return
	}

	u, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload funcionário", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load funcionário")
		return
	}
	httpjson.Respond(w, http.StatusOK, u)
}

// Delete handles DELETE /funcionarios/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.DeleteByID(ctx, id)
	if errors.Is(err, userstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "funcionário não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to delete funcionário", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete funcionário")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} URL parameter. A malformed id behaves like an
// absent resource.
func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "funcionário não encontrado")
		return primitive.NilObjectID, false
	}
	return id, true
}
