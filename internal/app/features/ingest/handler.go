// internal/app/features/ingest/handler.go
package ingest

import (
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	documentstore "projetex/internal/app/store/documents"
	projectstore "projetex/internal/app/store/projects"
	taskstore "projetex/internal/app/store/tasks"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/extract"
	"projetex/internal/app/system/timeouts"
)

// Handler owns document ingestion: file uploads and link fetches.
type Handler struct {
	Documents *documentstore.Store
	Importer  *Importer
	Fetcher   *extract.Fetcher
	Log       *zap.Logger

	// sanitizer strips any markup that survives text extraction before
	// content is stored.
	sanitizer *bluemonday.Policy
}

// NewHandler constructs an ingest Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Documents: documentstore.New(db),
		Importer:  NewImporter(taskstore.New(db), projectstore.New(db), userstore.New(db)),
		Fetcher:   extract.NewFetcher(timeouts.Fetch()),
		Log:       logger,
		sanitizer: bluemonday.StrictPolicy(),
	}
}
