// internal/app/features/ingest/routes.go
package ingest

import "github.com/go-chi/chi/v5"

// MountRoutes mounts all ingestion routes on the given router.
// All routes require bearer authentication.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/arquivo", h.UploadFile)
	r.Post("/link", h.IngestLink)
	r.Post("/links", h.IngestLinks)
	r.Get("/documentos", h.ListDocuments)
	r.Get("/documentos/{id}", h.GetDocument)
}
