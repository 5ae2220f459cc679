// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"projetex/internal/app/system/genai"
)

// DBDeps holds database/back-end dependencies for the app.
// Extend this struct as your app evolves.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Assistant is always non-nil after ConnectDB; it runs in disabled
	// mode when no Google Cloud project is configured.
	Assistant *genai.Client
}
