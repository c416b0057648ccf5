package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all settings, read from ETL_* environment variables.
type Config struct {
	OutputDir string `envconfig:"OUTPUT_DIR" default:"."`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	Serve     bool   `envconfig:"SERVE" default:"false"`
	Server    ServerConfig
}

// ServerConfig holds settings for serve mode. Keys are prefixed with ETL_SERVER_;
// PORT and GIN_MODE are honored as fallbacks.
type ServerConfig struct {
	Host    string `envconfig:"BIND_HOST" default:"0.0.0.0"`
	Port    int    `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("ETL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}
