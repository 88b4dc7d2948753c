package config

import (
	"fmt"
	"strings"

	apperrors "coach-planner-backend/internal/errors"

	"github.com/spf13/viper"
)

// State backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// DefaultStateKey is the storage key of the single state document
const DefaultStateKey = "uefa_c_pro_state_v2"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// State storage configuration
	StateBackend  string `mapstructure:"STATE_BACKEND"`
	StateKey      string `mapstructure:"STATE_KEY"`
	StateFileDir  string `mapstructure:"STATE_FILE_DIR"`
	StateMaxBytes int    `mapstructure:"STATE_MAX_BYTES"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Redis configuration
	RedisURL string `mapstructure:"REDIS_URL"`

	// Generation provider configuration
	GenerationEndpoint          string `mapstructure:"GENERATION_ENDPOINT"`
	GenerationAPIKey            string `mapstructure:"GENERATION_API_KEY"`
	GenerationModel             string `mapstructure:"GENERATION_MODEL"`
	GenerationResponsePath      string `mapstructure:"GENERATION_RESPONSE_PATH"`
	GenerationTimeoutSec        int    `mapstructure:"GENERATION_TIMEOUT_SEC"`
	GenerationOAuthTokenURL     string `mapstructure:"GENERATION_OAUTH_TOKEN_URL"`
	GenerationOAuthClientID     string `mapstructure:"GENERATION_OAUTH_CLIENT_ID"`
	GenerationOAuthClientSecret string `mapstructure:"GENERATION_OAUTH_CLIENT_SECRET"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS arrives as one comma separated string from the environment
	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)
	config.StateBackend = strings.ToLower(strings.TrimSpace(config.StateBackend))

	// Build database URL if not provided
	if config.DatabaseURL == "" && config.StateBackend == BackendPostgres {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// State defaults
	viper.SetDefault("STATE_BACKEND", BackendFile)
	viper.SetDefault("STATE_KEY", DefaultStateKey)
	viper.SetDefault("STATE_FILE_DIR", "./data")
	viper.SetDefault("STATE_MAX_BYTES", 0)

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "coach_planner")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// Redis defaults
	viper.SetDefault("REDIS_URL", "")

	// Generation defaults
	viper.SetDefault("GENERATION_ENDPOINT", "")
	viper.SetDefault("GENERATION_API_KEY", "")
	viper.SetDefault("GENERATION_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GENERATION_RESPONSE_PATH", "text")
	viper.SetDefault("GENERATION_TIMEOUT_SEC", 60)
	viper.SetDefault("GENERATION_OAUTH_TOKEN_URL", "")
	viper.SetDefault("GENERATION_OAUTH_CLIENT_ID", "")
	viper.SetDefault("GENERATION_OAUTH_CLIENT_SECRET", "")
}

func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, entry := range in {
		for _, origin := range strings.Split(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if strings.TrimSpace(config.StateKey) == "" {
		return apperrors.ErrStateKeyNotSet
	}

	switch config.StateBackend {
	case BackendMemory, BackendFile:
	case BackendPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return apperrors.ErrDatabaseNameNotSet
		}
	case BackendRedis:
		if config.RedisURL == "" {
			return apperrors.ErrRedisURLNotSet
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownBackend, config.StateBackend)
	}

	if config.GenerationTimeoutSec <= 0 {
		return apperrors.NewValidationError("GENERATION_TIMEOUT_SEC", "must be positive")
	}

	return nil
}

// HasGenerationProvider reports whether a generation endpoint is configured
func (c *Config) HasGenerationProvider() bool {
	return strings.TrimSpace(c.GenerationEndpoint) != ""
}

// UsesOAuth reports whether the generation client should fetch client-credentials tokens
func (c *Config) UsesOAuth() bool {
	return c.GenerationOAuthTokenURL != "" && c.GenerationOAuthClientID != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
