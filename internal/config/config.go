package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	AppBaseURL      string
	SessionDuration time.Duration

	// Database: sqlite (default), postgres or mysql
	DatabaseType string
	DatabaseURL  string
	DatabasePath string

	MigrationsPath string
	ArchivePath    string

	// Hosted auth provider (Bearer tokens) and OAuth sign-in
	AuthJWTSecret      string
	GoogleClientID     string
	GoogleClientSecret string

	// TMDB metadata lookups; empty key disables the service
	TMDBAPIKey  string
	TMDBBaseURL string

	// Feedback notification email via SES; empty from-address disables it
	AWSRegion       string
	SESFromEmail    string
	SESFromName     string
	FeedbackToEmail string

	Debug bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		AppBaseURL:      getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionDuration: 30 * 24 * time.Hour,

		DatabaseType: getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:  getEnv("DB_URL", ""),
		DatabasePath: getEnv("DB_PATH", "./reelstreak.db"),

		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		ArchivePath:    getEnv("ARCHIVE_PATH", "./data"),

		AuthJWTSecret:      getEnv("AUTH_JWT_SECRET", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),

		TMDBAPIKey:  getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL: getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),

		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:    getEnv("SES_FROM_EMAIL", ""),
		SESFromName:     getEnv("SES_FROM_NAME", "ReelStreak"),
		FeedbackToEmail: getEnv("FEEDBACK_TO_EMAIL", ""),

		Debug: getEnv("DEBUG", "") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
