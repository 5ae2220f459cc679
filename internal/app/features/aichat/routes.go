// internal/app/features/aichat/routes.go
package aichat

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the chat route on the given router.
// Requires bearer authentication.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/chat", h.Chat)
}
