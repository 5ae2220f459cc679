// internal/app/features/projetos/routes.go
package projetos

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all projeto routes on the given router.
// All routes require bearer authentication.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
