package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Recipes  RecipesConfig
	Matching MatchingConfig
	Limits   LimitsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RecipesConfig holds external recipe database configuration
type RecipesConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Enabled bool   `mapstructure:"enabled"`
}

// MatchingConfig holds matching pipeline configuration
type MatchingConfig struct {
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// LimitsConfig holds input bound configuration. Bounded input size is
// what keeps worst-case matching cost acceptable.
type LimitsConfig struct {
	MaxReceiptChars int `mapstructure:"max_receipt_chars"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pantrylens/")

	// Environment variable settings
	v.SetEnvPrefix("PANTRYLENS")
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
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// External recipe database defaults
	v.SetDefault("recipes.base_url", "https://www.themealdb.com/api/json/v1/1")
	v.SetDefault("recipes.enabled", true)

	// Matching defaults
	v.SetDefault("matching.enable_debug_logging", false)

	// Input bound defaults
	v.SetDefault("limits.max_receipt_chars", 50000)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Limits.MaxReceiptChars <= 0 {
		return fmt.Errorf("limits.max_receipt_chars must be positive, got: %d", config.Limits.MaxReceiptChars)
	}

	if config.Recipes.Enabled && config.Recipes.BaseURL == "" {
		return fmt.Errorf("recipes.base_url is required when the external recipe source is enabled")
	}

	return nil
}
