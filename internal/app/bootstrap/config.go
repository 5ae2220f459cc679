// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Projetex.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, secret_key, etc.
//   - Environment variables: PROJETEX_MONGO_URI, PROJETEX_SECRET_KEY, etc.
//   - Command-line flags: --mongo_uri, --secret_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "projetex", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Authentication
	{Name: "secret_key", Default: "", Desc: "JWT signing key (required; must be strong in production)"},
	{Name: "token_expiry", Default: "60m", Desc: "Access token lifetime (e.g., 30m, 2h)"},

	// Vertex AI assistant (disabled when google_cloud_project is blank)
	{Name: "google_cloud_project", Default: "", Desc: "Google Cloud project for the Vertex AI assistant"},
	{Name: "google_cloud_location", Default: "us-central1", Desc: "Vertex AI location"},

	// Link ingestion
	{Name: "fetch_timeout", Default: "20s", Desc: "Timeout for outbound fetches during link ingestion"},

	// CORS
	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated allowed CORS origins"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PROJETEX", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SecretKey:   appValues.String("secret_key"),
		TokenExpiry: appValues.Duration("token_expiry", 60*time.Minute),

		GoogleCloudProject:  appValues.String("google_cloud_project"),
		GoogleCloudLocation: appValues.String("google_cloud_location"),

		FetchTimeout: appValues.Duration("fetch_timeout", 20*time.Second),

		CORSAllowedOrigins: appValues.String("cors_allowed_origins"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Projetex validates the MongoDB URI format and requires a JWT signing
// key so that misconfiguration is caught before any connection attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.SecretKey == "" {
		return fmt.Errorf("secret_key must be set (PROJETEX_SECRET_KEY)")
	}

	if appCfg.TokenExpiry <= 0 {
		return fmt.Errorf("token_expiry must be positive, got %s", appCfg.TokenExpiry)
	}

	return nil
}
