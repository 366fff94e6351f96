package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins string

	RateLimitPerMinute int

	DBPath         string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBBusyTimeout  time.Duration
}

var AppConfig *Config

// Load reads the given env files (".env" when none) and the process
// environment into AppConfig. Missing files are ignored.
func Load(files ...string) {
	_ = godotenv.Load(files...)

	AppConfig = &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),

		RateLimitPerMinute: GetEnvInt("RATE_LIMIT_PER_MINUTE", 200),

		DBPath:         GetEnv("DB_PATH", "./data/notes.db"),
		DBMaxOpenConns: GetEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBBusyTimeout:  time.Duration(GetEnvInt("DB_BUSY_TIMEOUT_MS", 5000)) * time.Millisecond,
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt is GetEnv for integers; unparsable values fall back to the default.
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default",
			"key", key,
			"value", value,
			"default", defaultValue,
		)
		return defaultValue
	}
	return n
}
