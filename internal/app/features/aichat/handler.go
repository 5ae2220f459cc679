// internal/app/features/aichat/handler.go
package aichat

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	projectstore "projetex/internal/app/store/projects"
	taskstore "projetex/internal/app/store/tasks"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/commands"
	"projetex/internal/app/system/genai"
)

// Handler owns the chat endpoint: recognized commands run directly
// against the stores, everything else goes to the generative assistant.
type Handler struct {
	Router    *commands.Router
	Assistant *genai.Client
	Tasks     *taskstore.Store
	Log       *zap.Logger
}

// NewHandler constructs an aichat Handler.
func NewHandler(db *mongo.Database, assistant *genai.Client, logger *zap.Logger) *Handler {
	tasks := taskstore.New(db)
	return &Handler{
		Router:    commands.NewRouter(projectstore.New(db), tasks, userstore.New(db), logger),
		Assistant: assistant,
		Tasks:     tasks,
		Log:       logger,
	}
}
