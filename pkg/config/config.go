package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	FigmaClientID     string
	FigmaClientSecret string
	FigmaRedirectURI  string
	FigmaAPIBaseURL   string
	FigmaOAuthBaseURL string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=figmine port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,

		FigmaClientID:     getEnv("FIGMA_CLIENT_ID", ""),
		FigmaClientSecret: getEnv("FIGMA_CLIENT_SECRET", ""),
		FigmaRedirectURI:  getEnv("FIGMA_REDIRECT_URI", "http://localhost:8080/api/figma/callback"),
		FigmaAPIBaseURL:   getEnv("FIGMA_API_BASE_URL", "https://api.figma.com/v1"),
		FigmaOAuthBaseURL: getEnv("FIGMA_OAUTH_BASE_URL", "https://www.figma.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
