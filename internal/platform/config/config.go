package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration for both binaries.
type Config struct {
	// Command bridge
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	RateLimit      string // ulule/limiter formatted rate, e.g. "300-M"

	// Inventory screen
	ScreenPort         string
	ScreenIsAdmin      bool
	BridgeURL          string
	BridgeTimeout      time.Duration
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CORSAllowedOrigins []string

	// Shared
	OTLPEndpoint string
}

const defaultBridgeTimeout = 10 * time.Second

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("SCREEN_PORT", "8081")
	v.SetDefault("SCREEN_IS_ADMIN", false)
	v.SetDefault("BRIDGE_URL", "http://localhost:8080")
	v.SetDefault("BRIDGE_TIMEOUT", defaultBridgeTimeout.String())
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	// Environment variables override .env values, which override defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.ScreenPort = v.GetString("SCREEN_PORT")
	if cfg.ScreenPort == "" {
		cfg.ScreenPort = "8081"
		log.Printf("Warning: SCREEN_PORT environment variable not set. Defaulting to %s\n", cfg.ScreenPort)
	}
	cfg.ScreenIsAdmin = v.GetBool("SCREEN_IS_ADMIN")
	cfg.BridgeURL = v.GetString("BRIDGE_URL")

	// Load bridge timeout (e.g., "10s", "1m")
	timeoutStr := v.GetString("BRIDGE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultBridgeTimeout
		log.Printf("Warning: Invalid value for BRIDGE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.BridgeTimeout = timeout

	cfg.RedisAddr = v.GetString("REDIS_ADDR")
	cfg.RedisPassword = v.GetString("REDIS_PASSWORD")
	cfg.RedisDB = v.GetInt("REDIS_DB")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.OTLPEndpoint = v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
