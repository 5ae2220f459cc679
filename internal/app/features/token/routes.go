// internal/app/features/token/routes.go
package token

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the login route. It is public.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Issue)
}
