package bootstrap

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "projetex",
		SecretKey:     "test-signing-key",
		TokenExpiry:   time.Hour,
	}
}

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()

	if err := ValidateConfig(nil, validAppConfig(), logger); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := validAppConfig()
	bad.MongoURI = "http://not-a-mongo-uri"
	if err := ValidateConfig(nil, bad, logger); err == nil {
		t.Error("invalid Mongo URI accepted")
	}

	bad = validAppConfig()
	bad.SecretKey = ""
	if err := ValidateConfig(nil, bad, logger); err == nil {
		t.Error("empty secret key accepted")
	}

	bad = validAppConfig()
	bad.TokenExpiry = 0
	if err := ValidateConfig(nil, bad, logger); err == nil {
		t.Error("zero token expiry accepted")
	}
}
