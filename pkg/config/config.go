package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	// CatalogPath optionally points at a JSON career table overriding the
	// built-in one.
	CatalogPath string
	MaxUploadMB int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// ignore error if no .env file exists
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "cv-uyum-analizi"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 15),
	}
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
