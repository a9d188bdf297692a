package config

import (
	"fmt"
	"os"

	"investment-outlook/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides validation and defaulting.
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from a YAML file.
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// applyDefaults fills optional fields the YAML may omit.
func (c *Config) applyDefaults() {
	if c.Providers.AlphaVantage.BaseURL == "" {
		c.Providers.AlphaVantage.BaseURL = "https://www.alphavantage.co"
	}
	if c.Providers.AlphaVantage.APIKeyEnv == "" {
		c.Providers.AlphaVantage.APIKeyEnv = "ALPHA_VANTAGE_API_KEY"
	}
	if c.Providers.AlphaVantage.OutputSize == "" {
		c.Providers.AlphaVantage.OutputSize = "full"
	}
	if c.Providers.RentCast.BaseURL == "" {
		c.Providers.RentCast.BaseURL = "https://api.rentcast.io/v1"
	}
	if c.Providers.RentCast.APIKeyEnv == "" {
		c.Providers.RentCast.APIKeyEnv = "RENTCAST_API_KEY"
	}
	if c.Network.RequestTimeout <= 0 {
		c.Network.RequestTimeout = 30
	}
	if c.Storage.TTLHours <= 0 {
		c.Storage.TTLHours = 24
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	if c.Storage.Enabled {
		switch c.Storage.DBType {
		case "sqlite":
			if c.Storage.DBPath == "" {
				return fmt.Errorf("database path cannot be empty for sqlite")
			}
		case "postgres":
			if c.Storage.DBConnectionString == "" {
				return fmt.Errorf("connection string cannot be empty for postgres")
			}
		default:
			return fmt.Errorf("unknown db_type %q (must be sqlite or postgres)", c.Storage.DBType)
		}
	}

	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}

	return nil
}
