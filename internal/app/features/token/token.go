// internal/app/features/token/token.go
package token

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/auth"
	"projetex/internal/app/system/httpjson"
	"projetex/internal/app/system/timeouts"
)

// tokenResponse is the OAuth2 password-flow success payload. The id is
// included so clients can address the logged-in funcionário directly.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ID          string `json:"id"`
}

// Issue handles POST /token. Credentials arrive form-urlencoded with
// username (the email) and password fields. Any other content type is a
// 422; bad credentials are a 401 that never reveals which half failed.
func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || ct != "application/x-www-form-urlencoded" {
		httpjson.Error(w, http.StatusUnprocessableEntity,
			"credenciais devem ser enviadas como application/x-www-form-urlencoded")
		return
	}

	if err := r.ParseForm(); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, "formulário inválido")
		return
	}

	email := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		httpjson.Error(w, http.StatusUnprocessableEntity, "username e password são obrigatórios")
		return
	}

	if !h.Limiter.Check(r, email) {
		httpjson.Error(w, http.StatusTooManyRequests, "muitas tentativas de login; aguarde antes de tentar novamente")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, userstore.ErrNotFound) {
		h.Log.Error("login: failed to load funcionário", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not process login")
		return
	}
	// CheckPassword tolerates a nil user's empty hash, so unknown emails
	// and wrong passwords take the same path.
	var hash string
	if u != nil {
		hash = u.SenhaHash
	}
	if !auth.CheckPassword(hash, password) {
		httpjson.Unauthorized(w, "email ou senha incorretos")
		return
	}

	h.Limiter.ResetEmail(email)

	tok, err := h.Tokens.Issue(u.Email)
	if err != nil {
		h.Log.Error("login: failed to sign token", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not process login")
		return
	}

	httpjson.Respond(w, http.StatusOK, tokenResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		ID:          u.ID.Hex(),
	})
}
