// internal/app/features/projetos/projetos.go
package projetos

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "projetex/internal/app/store/projects"
	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/timeouts"
	"projetex/internal/domain/models"
)

// Create handles POST /projetos.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
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

	respID, ok := h.checkResponsavel(ctx, w, req.ResponsavelID)
	if !ok {
		return
	}

	p, err := h.Store.Create(ctx, models.Project{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		ResponsavelID: respID,
		Status:        req.Status,
		Prazo:         req.Prazo,
	})
	if err != nil {
		h.Log.Error("failed to create projeto", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create projeto")
		return
	}
	httpjson.Respond(w, http.StatusCreated, p)
}

// List handles GET /projetos.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	projects, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("failed to list projetos", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list projetos")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	httpjson.Respond(w, http.StatusOK, projects)
}

// Get handles GET /projetos/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, projectstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "projeto não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to load projeto", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load projeto")
		return
	}
	httpjson.Respond(w, http.StatusOK, p)
}

// Update handles PUT /projetos/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req projectRequest
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

	current, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, projectstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "projeto não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to load projeto", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load projeto")
		return
	}

	respID, ok := h.checkResponsavel(ctx, w, req.ResponsavelID)
	if !ok {
		return
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}

	err = h.Store.UpdateByID(ctx, id, projectstore.Update{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		ResponsavelID: respID,
		Status:        status,
		Prazo:         req.Prazo,
	})
	if errors.Is(err, projectstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "projeto não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to update projeto", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not update projeto")
		return
	}

	p, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload projeto", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load projeto")
		return
	}
	httpjson.Respond(w, http.StatusOK, p)
}

// Delete handles DELETE /projetos/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.DeleteByID(ctx, id)
	if errors.Is(err, projectstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "projeto não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to delete projeto", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete projeto")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// checkResponsavel parses and verifies the referenced funcionário. A
// malformed or unknown id is a 400, since the resource under edit is the
// project, not the user.
func (h *Handler) checkResponsavel(ctx context.Context, w http.ResponseWriter, hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "responsavel_id inválido")
		return primitive.NilObjectID, false
	}

	exists, err := h.Users.Exists(ctx, id)
	if err != nil {
		h.Log.Error("failed to check responsável", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not validate responsável")
		return primitive.NilObjectID, false
	}
	if !exists {
		httpjson.Error(w, http.StatusBadRequest, "responsável não encontrado")
		return primitive.NilObjectID, false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "projeto não encontrado")
		return primitive.NilObjectID, false
	}
	return id, true
}
