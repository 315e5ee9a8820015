package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime configuration of the service.
type Config struct {
	Port        string
	JWTSecret   string
	TokenExpiry time.Duration

	// Record store settings. The store is an out-of-process JSON collection
	// API (json-server in development); every call goes over HTTP.
	StoreBaseURL string
	StoreTimeout time.Duration

	FrontendOrigin string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenExpiry:    time.Duration(getEnvInt("TOKEN_EXPIRY_HOURS", 72)) * time.Hour,
		StoreBaseURL:   getEnv("STORE_BASE_URL", "http://localhost:3001"),
		StoreTimeout:   time.Duration(getEnvInt("STORE_TIMEOUT_SECONDS", 5)) * time.Second,
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
