package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Stores    StoresConfig
	Anthropic AnthropicConfig
	Galileo   GalileoConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Signup    SignupConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoresConfig holds retailer scraping configuration
type StoresConfig struct {
	Timeout           time.Duration `mapstructure:"timeout"`
	Retries           int           `mapstructure:"retries"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// AnthropicConfig holds the summarization model configuration
type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// GalileoConfig holds the external evaluation service configuration
type GalileoConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// SignupConfig holds signup profile storage configuration
type SignupConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopwise/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"https://*.app.daytona.io",
		"http://*.app.daytona.io",
	})

	// Store scraping defaults
	v.SetDefault("stores.timeout", "10s")
	v.SetDefault("stores.retries", 3)
	v.SetDefault("stores.requests_per_second", 1.0)
	v.SetDefault("stores.burst", 4)

	// Summarization defaults (API key optional; fallback summary is used without it)
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "claude-3-5-sonnet-20240620")
	v.SetDefault("anthropic.max_tokens", 200)

	// Evaluation defaults
	v.SetDefault("galileo.api_key", "")
	v.SetDefault("galileo.endpoint", "https://api.galileo.ai/v1/evaluate")

	// Cache defaults
	v.SetDefault("cache.ttl", "15m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)

	// Signup storage defaults
	v.SetDefault("signup.database_path", "shopwise.db")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Stores.Retries < 1 {
		return fmt.Errorf("stores.retries must be at least 1, got: %d", config.Stores.Retries)
	}

	if config.Stores.RequestsPerSecond <= 0 {
		return fmt.Errorf("stores.requests_per_second must be positive, got: %f", config.Stores.RequestsPerSecond)
	}

	if config.RateLimit.PerIP < 1 {
		return fmt.Errorf("ratelimit.per_ip must be at least 1, got: %d", config.RateLimit.PerIP)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got: %s", config.Cache.TTL)
	}

	if config.Signup.DatabasePath == "" {
		return fmt.Errorf("signup.database_path is required")
	}

	return nil
}
