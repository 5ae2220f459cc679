// internal/app/features/funcionarios/handler.go
package funcionarios

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "projetex/internal/app/store/users"
)

// Handler owns all funcionário (employee account) handlers.
type Handler struct {
	Store *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a funcionários Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: userstore.New(db),
		Log:   logger,
	}
}
