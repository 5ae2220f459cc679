// internal/app/features/token/handler.go
package token

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/auth"
	"projetex/internal/app/system/ratelimit"
)

// Handler owns the login endpoint that exchanges credentials for a JWT.
type Handler struct {
	Store   *userstore.Store
	Tokens  *auth.TokenManager
	Limiter *ratelimit.LoginLimiter
	Log     *zap.Logger
}

// NewHandler constructs a token Handler.
func NewHandler(db *mongo.Database, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		Store:   userstore.New(db),
		Tokens:  tokens,
		Limiter: ratelimit.NewLoginLimiter(),
		Log:     logger,
	}
}
