package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// MongoDB
	MongoURL string

	// JWT
	JWTSecret string
	JWTTTL    time.Duration // zero means tokens never expire

	// Server
	Port        string
	CORSOrigins string

	// Static site server
	SitePort string
	SiteDir  string

	// Error tracking
	SentryDSN string
	AppEnv    string
}

func Load() *Config {
	// A local .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		MongoURL: getEnv("MONGO_URL", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    getEnvDuration("JWT_TTL", 0),

		Port:        getEnv("PORT", "3060"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		SitePort: getEnv("SITE_PORT", "9000"),
		SiteDir:  getEnv("SITE_DIR", "web/build"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
		AppEnv:    getEnv("APP_ENV", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvDuration parses a Go duration string ("24h", "15m"). An unset or
// invalid value yields the fallback, so JWT_TTL defaults to no expiry.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
