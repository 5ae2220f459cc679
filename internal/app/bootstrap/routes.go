// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	agendafeature "projetex/internal/app/features/agenda"
	aichatfeature "projetex/internal/app/features/aichat"
	funcionariosfeature "projetex/internal/app/features/funcionarios"
	healthfeature "projetex/internal/app/features/health"
	ingestfeature "projetex/internal/app/features/ingest"
	projetosfeature "projetex/internal/app/features/projetos"
	tarefasfeature "projetex/internal/app/features/tarefas"
	tokenfeature "projetex/internal/app/features/token"
	userstore "projetex/internal/app/store/users"
	"projetex/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Routes:
//   - /health             public, Mongo ping
//   - /token              public, OAuth2 password form login
//   - POST /funcionarios  public signup; the rest of /funcionarios requires
//     a bearer token
//   - /projetos, /tarefas, /agenda, /ingest, /ai  bearer token required
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(appCfg.SecretKey, appCfg.TokenExpiry, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	// The bearer middleware re-fetches the user on every request so deleted
	// accounts lose access immediately.
	users := userstore.New(deps.MongoDatabase)
	requireAuth := tokens.RequireAuth(users)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   strings.Split(appCfg.CORSAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Route("/health", healthHandler.MountRoutes)

	tokenHandler := tokenfeature.NewHandler(deps.MongoDatabase, tokens, logger)
	r.Route("/token", tokenHandler.MountRoutes)

	// Signup stays public so new employees can register; everything else on
	// /funcionarios needs a bearer token.
	funcionariosHandler := funcionariosfeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/funcionarios", func(r chi.Router) {
		funcionariosHandler.MountPublicRoutes(r)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			funcionariosHandler.MountRoutes(r)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		projetosHandler := projetosfeature.NewHandler(deps.MongoDatabase, logger)
		r.Route("/projetos", projetosHandler.MountRoutes)

		tarefasHandler := tarefasfeature.NewHandler(deps.MongoDatabase, logger)
		r.Route("/tarefas", tarefasHandler.MountRoutes)

		agendaHandler := agendafeature.NewHandler(deps.MongoDatabase, logger)
		r.Route("/agenda", agendaHandler.MountRoutes)

		ingestHandler := ingestfeature.NewHandler(deps.MongoDatabase, logger)
		r.Route("/ingest", ingestHandler.MountRoutes)

		aichatHandler := aichatfeature.NewHandler(deps.MongoDatabase, deps.Assistant, logger)
		r.Route("/ai", aichatHandler.MountRoutes)
	})

	return r, nil
}
