package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Session cookie configuration
	Session SessionConfig

	// CORS configuration
	CORS CORSConfig

	// Demo data configuration
	Demo DemoConfig

	// Complaint handling configuration
	Complaint ComplaintConfig

	// QR code configuration
	QR QRConfig

	// Rate limiting configuration
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string
	Environment string // development, staging, production
	LogLevel    string // debug, info, warn, error
}

// SessionConfig holds the demo session cookie configuration
type SessionConfig struct {
	Secret string
	Expiry time.Duration
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// DemoConfig controls the periodic restore of the demo data set
type DemoConfig struct {
	ResetEnabled  bool
	ResetSchedule string // cron expression with seconds field
}

// ComplaintConfig holds complaint workflow settings
type ComplaintConfig struct {
	ResolutionHours int
}

// QRConfig holds QR image settings
type QRConfig struct {
	ImageSize int // pixels
}

// RateLimitConfig limits guest complaint submissions per client IP
type RateLimitConfig struct {
	Requests      int // 0 disables the limit
	WindowSeconds int
}

// developmentSessionSecret signs demo cookies when no secret is configured outside production
const developmentSessionSecret = "maintenance-dev-session-secret"

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", ""),
			Expiry: time.Duration(getEnvAsInt("SESSION_EXPIRY", 28800)) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "X-Request-ID"}),
		},
		Demo: DemoConfig{
			ResetEnabled:  getEnvAsBool("DEMO_RESET_ENABLED", true),
			ResetSchedule: getEnv("DEMO_RESET_SCHEDULE", "0 0 */6 * * *"),
		},
		Complaint: ComplaintConfig{
			ResolutionHours: getEnvAsInt("COMPLAINT_RESOLUTION_HOURS", 24),
		},
		QR: QRConfig{
			ImageSize: getEnvAsInt("QR_IMAGE_SIZE", 256),
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsInt("COMPLAINT_RATE_LIMIT", 20),
			WindowSeconds: getEnvAsInt("COMPLAINT_RATE_WINDOW_SECONDS", 3600),
		},
	}

	if config.Session.Secret == "" && !config.IsProduction() {
		config.Session.Secret = developmentSessionSecret
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}

	if c.IsProduction() && c.Session.Secret == developmentSessionSecret {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}

	if c.Session.Expiry <= 0 {
		return fmt.Errorf("SESSION_EXPIRY must be positive")
	}

	if c.Complaint.ResolutionHours <= 0 {
		return fmt.Errorf("COMPLAINT_RESOLUTION_HOURS must be positive")
	}

	if c.QR.ImageSize < 64 || c.QR.ImageSize > 1024 {
		return fmt.Errorf("QR_IMAGE_SIZE must be between 64 and 1024, got %d", c.QR.ImageSize)
	}

	if c.RateLimit.Requests < 0 || (c.RateLimit.Requests > 0 && c.RateLimit.WindowSeconds <= 0) {
		return fmt.Errorf("COMPLAINT_RATE_LIMIT must be >= 0 with a positive COMPLAINT_RATE_WINDOW_SECONDS")
	}

	if c.Demo.ResetEnabled && c.Demo.ResetSchedule == "" {
		return fmt.Errorf("DEMO_RESET_SCHEDULE is required when DEMO_RESET_ENABLED is true")
	}

	return nil
}

// Helper functions to get environment variables

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, v := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
