// internal/app/features/funcionarios/routes.go
package funcionarios

import "github.com/go-chi/chi/v5"

// MountPublicRoutes mounts signup, which needs no token.
func (h *Handler) MountPublicRoutes(r chi.Router) {
	r.Post("/", h.Create)
}

// MountRoutes mounts the authenticated funcionário routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
