// internal/app/features/tarefas/tarefas.go
package tarefas

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	taskstore "projetex/internal/app/store/tasks"
	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/timeouts"
	"projetex/internal/domain/models"
)

// Create handles POST /tarefas.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
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

	refs, ok := h.checkRefs(ctx, w, req.ProjetoID, req.ResponsavelID)
	if !ok {
		return
	}

	t, err := h.Store.Create(ctx, models.Task{
		Nome:          req.Nome,
		ComoFazer:     req.ComoFazer,
		ProjetoID:     refs.projeto,
		ResponsavelID: refs.responsavel,
		Status:        req.Status,
		Prioridade:    req.Prioridade,
		Condicao:      req.Condicao,
		Categoria:     req.Categoria,
		Fase:          req.Fase,
		Porcentagem:   req.Porcentagem,
		DataInicio:    req.DataInicio,
		Prazo:         req.Prazo,
	})
	if err != nil {
		h.Log.Error("failed to create tarefa", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create tarefa")
		return
	}
	httpjson.Respond(w, http.StatusCreated, t)
}

// List handles GET /tarefas. An optional ?projeto_id= filters by project.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var filter *primitive.ObjectID
	if raw := r.URL.Query().Get("projeto_id"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "projeto_id inválido")
			return
		}
		filter = &id
	}

	tasks, err := h.Store.List(ctx, filter)
	if err != nil {
		h.Log.Error("failed to list tarefas", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list tarefas")
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	httpjson.Respond(w, http.StatusOK, tasks)
}

// Get handles GET /tarefas/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	t, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, taskstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "tarefa não encontrada")
		return
	}
	if err != nil {
		h.Log.Error("failed to load tarefa", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load tarefa")
		return
	}
	httpjson.Respond(w, http.StatusOK, t)
}

// Update handles PUT /tarefas/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req taskRequest
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
	if errors.Is(err, taskstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "tarefa não encontrada")
		return
	}
	if err != nil {
		h.Log.Error("failed to load tarefa", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load tarefa")
		return
	}

	refs, ok := h.checkRefs(ctx, w, req.ProjetoID, req.ResponsavelID)
	if !ok {
		return
	}

	status := req.Status
	if status == "" {
		status = current.Status
	}

	err = h.Store.UpdateByID(ctx, id, taskstore.Update{
		Nome:          req.Nome,
		ComoFazer:     req.ComoFazer,
		ProjetoID:     refs.projeto,
		ResponsavelID: refs.responsavel,
		Status:        status,
		Prioridade:    req.Prioridade,
		Porcentagem:   req.Porcentagem,
		DataInicio:    req.DataInicio,
		Prazo:         req.Prazo,
	})
	if errors.Is(err, taskstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "tarefa não encontrada")
		return
	}
	if err != nil {
		h.Log.Error("failed to update tarefa", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not update tarefa")
		return
	}

	t, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload tarefa", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load tarefa")
		return
	}
	httpjson.Respond(w, http.StatusOK, t)
}

// Delete handles DELETE /tarefas/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.DeleteByID(ctx, id)
	if errors.Is(err, taskstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "tarefa não encontrada")
		return
	}
	if err != nil {
		h.Log.Error("failed to delete tarefa", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete tarefa")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type taskRefs struct {
	projeto     primitive.ObjectID
	responsavel primitive.ObjectID
}

// checkRefs verifies the referenced projeto and funcionário both exist.
func (h *Handler) checkRefs(ctx context.Context, w http.ResponseWriter, projetoHex, respHex string) (taskRefs, bool) {
	projetoID, err := primitive.ObjectIDFromHex(projetoHex)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "projeto_id inválido")
		return taskRefs{}, false
	}
	respID, err := primitive.ObjectIDFromHex(respHex)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "responsavel_id inválido")
		return taskRefs{}, false
	}

	exists, err := h.Projects.Exists(ctx, projetoID)
	if err != nil {
		h.Log.Error("failed to check projeto", zap.Error(err), zap.String("id", projetoID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not validate projeto")
		return taskRefs{}, false
	}
	if !exists {
		httpjson.Error(w, http.StatusBadRequest, "projeto não encontrado")
		return taskRefs{}, false
	}

	exists, err = h.Users.Exists(ctx, respID)
	if err != nil {
		h.Log.Error("failed to check responsável", zap.Error(err), zap.String("id", respID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not validate responsável")
		return taskRefs{}, false
	}
	if !exists {
		httpjson.Error(w, http.StatusBadRequest, "responsável não encontrado")
		return taskRefs{}, false
	}

	return taskRefs{projeto: projetoID, responsavel: respID}, true
}

func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "tarefa não encontrada")
		return primitive.NilObjectID, false
	}
	return id, true
}
