// internal/app/features/tarefas/handler.go
package tarefas

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	projectstore "projetex/internal/app/store/projects"
	taskstore "projetex/internal/app/store/tasks"
	userstore "projetex/internal/app/store/users"
)

// Handler owns all tarefa handlers.
type Handler struct {
	Store    *taskstore.Store
	Projects *projectstore.Store
	Users    *userstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a tarefas Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    taskstore.New(db),
		Projects: projectstore.New(db),
		Users:    userstore.New(db),
		Log:      logger,
	}
}
