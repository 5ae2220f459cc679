// internal/app/features/agenda/handler.go
package agenda

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	calendarstore "projetex/internal/app/store/calendar"
)

// Handler owns all agenda (calendar) handlers.
type Handler struct {
	Store *calendarstore.Store
	Log   *zap.Logger
}

// NewHandler constructs an agenda Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: calendarstore.New(db),
		Log:   logger,
	}
}
