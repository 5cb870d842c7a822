// Package main provides the ToolDeck server CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	API      APIConfig      `yaml:"api"`
	Verbose  bool           `yaml:"-"` // set via CLI flag
}

// ServerConfig contains listen addresses.
type ServerConfig struct {
	Address        string `yaml:"address"`         // HTTP API listen address (default: :8080)
	MetricsAddress string `yaml:"metrics_address"` // Prometheus listen address (default: :9090)
}

// DatabaseConfig contains the durable store settings.
type DatabaseConfig struct {
	Path string `yaml:"path"` // SQLite database file (default: data/tooldeck.db)
}

// AuthConfig contains token settings. The JWT secret itself comes from
// the TOOLDECK_JWT_SECRET environment variable, never the config file.
type AuthConfig struct {
	AccessTokenTTL string `yaml:"access_token_ttl"` // e.g. "15m"
}

// APIConfig contains request throttling settings.
type APIConfig struct {
	RateLimitPerIP   int `yaml:"rate_limit_per_ip"`   // login attempts per minute per IP
	RateLimitPerUser int `yaml:"rate_limit_per_user"` // requests per minute per user
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Server.MetricsAddress == "" {
		c.Server.MetricsAddress = ":9090"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/tooldeck.db"
	}
	if c.Auth.AccessTokenTTL == "" {
		c.Auth.AccessTokenTTL = "15m"
	}
	if c.API.RateLimitPerIP == 0 {
		c.API.RateLimitPerIP = 10
	}
	if c.API.RateLimitPerUser == 0 {
		c.API.RateLimitPerUser = 100
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}
	if c.Server.Address == c.Server.MetricsAddress {
		return fmt.Errorf("server.metrics_address must differ from server.address")
	}
	if _, err := c.AccessTokenTTL(); err != nil {
		return fmt.Errorf("invalid auth.access_token_ttl: %w", err)
	}
	if c.API.RateLimitPerIP < 0 {
		return fmt.Errorf("api.rate_limit_per_ip must not be negative")
	}
	if c.API.RateLimitPerUser < 0 {
		return fmt.Errorf("api.rate_limit_per_user must not be negative")
	}
	return nil
}

// AccessTokenTTL parses the configured token lifetime.
func (c *Config) AccessTokenTTL() (time.Duration, error) {
	return time.ParseDuration(c.Auth.AccessTokenTTL)
}
