// internal/app/features/agenda/routes.go
package agenda

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all agenda routes on the given router.
// All routes require bearer authentication.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}
