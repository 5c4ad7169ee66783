package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server-level configuration loaded from the environment.
// All integration credentials arrive per invocation in the request body and
// live in the typed configs of integration.go instead.
type Config struct {
	Port string
	Env  string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
