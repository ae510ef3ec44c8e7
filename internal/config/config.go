package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AppEnv        string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CORSOrigin    string
	JWTSecret     string
	AuthEnabled   bool
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CORSOrigin:    getEnv("CORS_ORIGIN", "*"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		AuthEnabled:   getEnv("AUTH_ENABLED", "false") == "true",
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
