package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	REQUEST_TIMEOUT=10s
//	RATE_LIMIT_PER_MINUTE=60
//	DATA_DIR=./data/snapshots
//	DATA_FILE=stock-data-2025-05-05.json
type Config struct {
	Server ServerConfig // HTTP server configuration
	Data   DataConfig   // Snapshot source settings
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on (e.g., "8080").
//   - RequestTimeout: deadline applied to every request context.
//   - RateLimitPerMinute: maximum requests per client IP per minute.
type ServerConfig struct {
	Port               string
	RequestTimeout     time.Duration
	RateLimitPerMinute int
}

// DataConfig selects where stock snapshots are read from.
//
// Fields:
//   - Dir: directory holding snapshot files; empty uses the snapshots embedded in the binary.
//   - File: explicit snapshot file name; empty picks the latest "stock-data-YYYY-MM-DD.json".
type DataConfig struct {
	Dir  string
	File string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required values are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("DATA_DIR", "")
	viper.SetDefault("DATA_FILE", "")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Data: DataConfig{
			Dir:  viper.GetString("DATA_DIR"),
			File: viper.GetString("DATA_FILE"),
		},
	}

	validateConfig()
}

// missingFields lists the keys of AppConfig that are empty or out of range.
func missingFields() []string {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if AppConfig.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	return missing
}

// validateConfig terminates the application if any required value is
// missing or invalid.
func validateConfig() {
	if missing := missingFields(); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
