package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port           string
	APIBaseURL     string
	SessionSecret  string
	SuperuserEmail string
	RedisAddr      string
}

// Load reads .env (when present) and the process environment.
// Every field has a working default so a bare `go run .` comes up.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := Config{
		Port:           getenv("PORT", ":3000"),
		APIBaseURL:     getenv("API_BASE_URL", "http://localhost:8080"),
		SessionSecret:  getenv("SESSION_SECRET", "tierra-nativa-dev-secret"),
		SuperuserEmail: getenv("SUPERUSER_EMAIL", "admin@tierranativa.com"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
