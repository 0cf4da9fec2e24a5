package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	LogLevel       slog.Level
	ApiServicePort string
	DatabaseURL    string
	SessionSecret  string
	SessionTTL     int64 // Session lifetime in seconds
	RedisHost      string
	RedisPort      int64
	RedisPassword  string
	RedisDB        int64
	LoginRateLimit int64 // Max login attempts per client per window
	LoginRateWin   int64 // Rate limit window in seconds
}

func LoadConfig() *Config {
	// Mirrors the original deployment: a .env file is honored when present,
	// real environment variables win.
	_ = godotenv.Load()

	return &Config{
		AppEnv:         getEnv("APP_ENV", "development"),                                            // Default development
		LogLevel:       getLogLevel(),                                                               // Default INFO
		ApiServicePort: getEnv("API_SERVICE_PORT", "8080"),                                          // Default 8080
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://beststore:beststore@db:5432/beststore"),  // Default local compose DSN
		SessionSecret:  getEnv("SESSION_SECRET", "beststore_secret"),                                // Default secret key
		SessionTTL:     getEnvAsInt64("SESSION_TTL", 86400),                                         // Default 24 hours
		RedisHost:      getEnv("REDIS_HOST", "redis"),                                               // Default redis
		RedisPort:      getEnvAsInt64("REDIS_PORT", 6379),                                           // Default 6379
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),                                                // Default empty
		RedisDB:        getEnvAsInt64("REDIS_DATABASE", 0),                                          // Default 0
		LoginRateLimit: getEnvAsInt64("LOGIN_RATE_LIMIT", 10),                                       // Default 10 attempts
		LoginRateWin:   getEnvAsInt64("LOGIN_RATE_WINDOW", 300),                                     // Default 5 minutes
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
