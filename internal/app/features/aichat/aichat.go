// internal/app/features/aichat/aichat.go
package aichat

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"projetex/internal/app/system/auth"
	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/timeouts"
)

// chatRequest is the POST /ai/chat payload.
type chatRequest struct {
	Prompt string `json:"prompt"`
}

// chatResponse is the reply. Executado is true when the prompt matched a
// direct command and the answer reflects an executed mutation.
type chatResponse struct {
	Resposta  string `json:"resposta"`
	Executado bool   `json:"executado"`
}

// pendingTaskLimit caps how many tasks feed the assistant prompt.
const pendingTaskLimit = 20

// Chat handles POST /ai/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Unauthorized(w, "não autenticado")
		return
	}

	var req chatRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		httpjson.Error(w, http.StatusUnprocessableEntity, "prompt é obrigatório")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Recognized commands short-circuit the model entirely.
	if res, err := h.Router.Handle(ctx, prompt); err != nil {
		h.Log.Error("command execution failed", zap.Error(err), zap.String("prompt", prompt))
		httpjson.Error(w, http.StatusInternalServerError, "could not execute command")
		return
	} else if res != nil {
		httpjson.Respond(w, http.StatusOK, chatResponse{Resposta: res.Mensagem, Executado: res.Executado})
		return
	}

	reply, err := h.generate(ctx, user, prompt)
	if err != nil {
		h.Log.Warn("assistant call failed", zap.Error(err))
		httpjson.Error(w, http.StatusBadGateway, "o assistente está indisponível no momento")
		return
	}
	httpjson.Respond(w, http.StatusOK, chatResponse{Resposta: reply})
}

// generate asks the assistant for a reply, feeding it the user's pending
// tasks ordered by due date.
func (h *Handler) generate(ctx context.Context, user *auth.Identity, prompt string) (string, error) {
	if !h.Assistant.Enabled() {
		return h.Assistant.Generate(ctx, user.Nome, nil)
	}

	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return "", err
	}
	tasks, err := h.Tasks.ListPendingByResponsavel(ctx, userID, pendingTaskLimit)
	if err != nil {
		return "", err
	}
	return h.Assistant.Generate(ctx, user.Nome, tasks)
}
