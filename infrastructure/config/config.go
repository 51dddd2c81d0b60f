package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string        `yaml:"server_address"`
	Environment   string        `yaml:"environment" validate:"oneof=development staging production"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"`

	// Supabase configuration
	SupabaseURL        string `yaml:"supabase_url" validate:"required,url"`
	SupabaseServiceKey string `yaml:"supabase_service_key" validate:"required"`

	// Layout service; empty disables the external engine and every graph
	// falls back to the built-in circular placement
	LayoutServiceURL string `yaml:"layout_service_url" validate:"omitempty,url"`

	// Authentication
	JWTSecret string `yaml:"jwt_secret"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// CORS
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableCORS    bool `yaml:"enable_cors"`
	EnableAuth    bool `yaml:"enable_auth"`
}

// LoadConfig loads configuration from environment variables, with an
// optional YAML overlay named by CONFIG_FILE applied on top.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		ReadTimeout:   getEnvDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:  getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:   getEnvDuration("IDLE_TIMEOUT", 60*time.Second),

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),

		LayoutServiceURL: getEnv("LAYOUT_SERVICE_URL", ""),

		JWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),

		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		EnableAuth:    getEnvBool("ENABLE_AUTH", true),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFile overlays YAML settings from path onto the config.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.IsProduction() && c.EnableAuth && c.JWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required in production")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
