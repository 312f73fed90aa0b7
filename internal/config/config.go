package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret       string        `yaml:"jwt_secret"`
		TokenTTLSeconds int64         `yaml:"token_ttl_seconds"`
		BcryptCost      int           `yaml:"bcrypt_cost"`
		TokenTTL        time.Duration `yaml:"-"`
	} `yaml:"auth"`
}

// LoadConfig reads configuration from the specified YAML file, applies
// environment overrides and validates the result. A missing config file is
// not an error as long as the environment provides everything required.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err == nil {
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
		file.Close()
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	if config.Auth.TokenTTLSeconds > 0 {
		config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTLSeconds) * time.Second
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Database.Name == "" {
		config.Database.Name = "todo"
	}
	if config.Auth.TokenTTL == 0 {
		config.Auth.TokenTTL = time.Hour
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func applyEnv(config *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		config.Database.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		config.Database.Name = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		config.Auth.TokenTTL = ttl
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST %q: %w", v, err)
		}
		config.Auth.BcryptCost = cost
	}
	return nil
}

// Validate rejects configurations that would make the process run in an
// insecure state. The JWT secret and the bcrypt cost have no fallback:
// a missing value aborts startup instead of silently substituting a default.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret (JWT_SECRET) is required")
	}
	if c.Database.URI == "" {
		return fmt.Errorf("database.uri (MONGO_URI) is required")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost (BCRYPT_COST) must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl (TOKEN_TTL) must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}
