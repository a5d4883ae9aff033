package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// JWT
	JWTSecret       string
	JWTExpiresHours int

	// Gemini AI (hints)
	GeminiAPIKey       string
	HintTimeoutSeconds int

	// Generation cache
	CacheTTLSeconds int

	// Rate limiting
	RateLimitMax       int
	RateLimitWindowSec int
	AuthRateLimitMax   int

	// SMTP
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// CORS
	CORSOrigin string

	// Email receipt workers
	EmailWorkers int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Env:                getEnvOrDefault("ENV", "development"),
		DatabaseURL:        mustGetEnv("DATABASE_URL"),
		RedisURL:           mustGetEnv("REDIS_URL"),
		JWTSecret:          mustGetEnv("JWT_SECRET"),
		JWTExpiresHours:    getEnvAsIntOrDefault("JWT_EXPIRES_HOURS", 2),
		GeminiAPIKey:       getEnvOrDefault("GEMINI_API_KEY", ""),
		HintTimeoutSeconds: getEnvAsIntOrDefault("HINT_TIMEOUT_SECONDS", 6),
		CacheTTLSeconds:    getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 600),
		RateLimitMax:       getEnvAsIntOrDefault("RATE_MAX_REQUESTS", 100),
		RateLimitWindowSec: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		AuthRateLimitMax:   getEnvAsIntOrDefault("AUTH_RATE_MAX_REQUESTS", 10),
		SMTPHost:           getEnvOrDefault("SMTP_HOST", ""),
		SMTPPort:           getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUser:           getEnvOrDefault("SMTP_USER", ""),
		SMTPPass:           getEnvOrDefault("SMTP_PASS", ""),
		SMTPFrom:           getEnvOrDefault("SMTP_FROM", "noreply@quizzer.app"),
		CORSOrigin:         getEnvOrDefault("CORS_ORIGIN", "*"),
		EmailWorkers:       getEnvAsIntOrDefault("EMAIL_WORKERS", 2),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
