package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Inference InferenceConfig
	Batch     BatchConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds verification settings for access tokens issued by the
// main HR application.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// FallbackPolicy controls what happens when the inference service fails
// or returns an unparseable response.
type FallbackPolicy string

const (
	// FallbackNeutral silently substitutes a neutral score.
	FallbackNeutral FallbackPolicy = "neutral"
	// FallbackFlag substitutes a neutral score and surfaces the outage as
	// a zero-weight key factor on the result.
	FallbackFlag FallbackPolicy = "flag"
)

// InferenceConfig configures the external scoring model.
type InferenceConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	Temperature    float32
	Timeout        time.Duration
	FallbackPolicy FallbackPolicy
}

// BatchConfig bounds concurrency for organization-wide prediction runs.
type BatchConfig struct {
	Concurrency int
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; variables come from
	// the process environment there.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pulseopti_hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Inference service configuration
	temperature, err := strconv.ParseFloat(getEnv("INFERENCE_TEMPERATURE", "0.3"), 32)
	if err != nil {
		return nil, fmt.Errorf("invalid INFERENCE_TEMPERATURE: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("INFERENCE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid INFERENCE_TIMEOUT: %w", err)
	}

	config.Inference = InferenceConfig{
		BaseURL:        getEnv("INFERENCE_BASE_URL", ""),
		APIKey:         getEnv("INFERENCE_API_KEY", ""),
		Model:          getEnv("INFERENCE_MODEL", "gpt-4o-mini"),
		Temperature:    float32(temperature),
		Timeout:        timeout,
		FallbackPolicy: FallbackPolicy(getEnv("INFERENCE_FALLBACK_POLICY", string(FallbackNeutral))),
	}

	// Batch prediction configuration
	concurrency, err := strconv.Atoi(getEnv("BATCH_CONCURRENCY", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_CONCURRENCY: %w", err)
	}
	config.Batch = BatchConfig{Concurrency: concurrency}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Inference.APIKey == "" {
		return fmt.Errorf("INFERENCE_API_KEY is required")
	}
	switch c.Inference.FallbackPolicy {
	case FallbackNeutral, FallbackFlag:
	default:
		return fmt.Errorf("INFERENCE_FALLBACK_POLICY must be %q or %q", FallbackNeutral, FallbackFlag)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("BATCH_CONCURRENCY must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
