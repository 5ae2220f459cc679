// internal/app/features/projetos/handler.go
package projetos

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	projectstore "projetex/internal/app/store/projects"
	userstore "projetex/internal/app/store/users"
)

// Handler owns all projeto handlers.
type Handler struct {
	Store *projectstore.Store
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a projetos Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: projectstore.New(db),
		Users: userstore.New(db),
		Log:   logger,
	}
}
