// internal/app/features/agenda/agenda.go
package agenda

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	calendarstore "projetex/internal/app/store/calendar"
	"projetex/internal/app/system/auth"
	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/timeouts"
	"projetex/internal/domain/models"
)

// Create handles POST /agenda. The entry is owned by the authenticated
// funcionário.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req eventRequest
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

	e, err := h.Store.Create(ctx, models.CalendarEvent{
		ResponsavelID: owner,
		Titulo:        req.Titulo,
		Inicio:        req.Inicio,
		Fim:           req.Fim,
	})
	if errors.Is(err, calendarstore.ErrInvertedRange) {
		httpjson.Error(w, http.StatusUnprocessableEntity, "fim não pode ser anterior a inicio")
		return
	}
	if err != nil {
		h.Log.Error("failed to create evento", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create evento")
		return
	}
	httpjson.Respond(w, http.StatusCreated, e)
}

// List handles GET /agenda, returning the authenticated user's entries.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUserID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	events, err := h.Store.List(ctx, &owner)
	if err != nil {
		h.Log.Error("failed to list eventos", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not list eventos")
		return
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}
	httpjson.Respond(w, http.StatusOK, events)
}

// Get handles GET /agenda/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, calendarstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "evento não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to load evento", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load evento")
		return
	}
	httpjson.Respond(w, http.StatusOK, e)
}

// Update handles PUT /agenda/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req eventRequest
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

	err := h.Store.UpdateByID(ctx, id, calendarstore.Update{
		Titulo: req.Titulo,
		Inicio: req.Inicio,
		Fim:    req.Fim,
	})
	switch {
	case errors.Is(err, calendarstore.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "evento não encontrado")
		return
	case errors.Is(err, calendarstore.ErrInvertedRange):
		httpjson.Error(w, http.StatusUnprocessableEntity, "fim não pode ser anterior a inicio")
		return
	case err != nil:
		h.Log.Error("failed to update evento", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not update evento")
		return
	}

	e, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload evento", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not load evento")
		return
	}
	httpjson.Respond(w, http.StatusOK, e)
}

// Delete handles DELETE /agenda/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.DeleteByID(ctx, id)
	if errors.Is(err, calendarstore.ErrNotFound) {
		httpjson.Error(w, http.StatusNotFound, "evento não encontrado")
		return
	}
	if err != nil {
		h.Log.Error("failed to delete evento", zap.Error(err), zap.String("id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete evento")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func currentUserID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthorized(w, "não autenticado")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		httpjson.Unauthorized(w, "não autenticado")
		return primitive.NilObjectID, false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "evento não encontrado")
		return primitive.NilObjectID, false
	}
	return id, true
}
