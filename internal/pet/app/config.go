package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	IdentityIssuer    string // Required: issuer claim expected on identity tokens
	IdentityJWTSecret string // Required: shared secret for verifying identity tokens

	KeyDir       string // Optional: directory holding the groth16 parameters (default: ./keys)
	KeyBootstrap bool   // Optional: generate parameters if missing (default: true)
	DatabaseFile string // Optional: path to SQLite database file (default: ./moodachu.db)

	SMTPHost     string // Optional: SMTP host; empty disables notifications
	SMTPPort     string // Optional: SMTP port (default: 587)
	SMTPUsername string // Optional: SMTP auth username
	SMTPPassword string // Optional: SMTP auth password
	SMTPFrom     string // Optional: From address for notification mail

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		IdentityIssuer:    getEnvOrDefault("IDENTITY_ISSUER", "moodachu-identity"),
		IdentityJWTSecret: os.Getenv("IDENTITY_JWT_SECRET"),

		KeyDir:       getEnvOrDefault("KEY_DIR", "keys"),
		KeyBootstrap: getEnvBoolOrDefault("KEY_BOOTSTRAP", true),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "moodachu.db"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvOrDefault("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("SMTP_FROM", "moodachu@localhost"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
