package config

import (
	"os"
	"time"
)

type Config struct {
	DatabasePath  string
	JWTSecret     string
	JWTExpiration time.Duration
	ServerPort    string
	GeminiAPIKey  string
	GeminiModel   string
	Theme         string
}

func Load() *Config {
	return &Config{
		DatabasePath:  getEnv("DATABASE_PATH", "employees.db"),
		JWTSecret:     getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration: 24 * time.Hour,
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GeminiAPIKey:  getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		Theme:         getEnv("HR_THEME", "light"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
