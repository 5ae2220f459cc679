// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds app-specific configuration for Projetex.
//
// Values are loaded by LoadConfig from config files, PROJETEX_* environment
// variables, and command-line flags (see config.go for the key definitions).
type AppConfig struct {
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// JWT bearer tokens issued by POST /token.
	SecretKey   string
	TokenExpiry time.Duration

	// Vertex AI assistant. An empty project disables the assistant;
	// /ai/chat then answers with a fixed message for free-form prompts.
	GoogleCloudProject  string
	GoogleCloudLocation string

	// Outbound HTTP timeout for link ingestion.
	FetchTimeout time.Duration

	// Comma-separated list of allowed CORS origins.
	CORSAllowedOrigins string
}
