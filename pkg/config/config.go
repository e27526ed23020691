// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// DebugFlag is enabled by any value other than "", "0" or "false".
type DebugFlag bool

// Decode implements envconfig.Decoder.
func (d *DebugFlag) Decode(value string) error {
	*d = DebugFlag(value != "" && value != "0" && strings.ToLower(value) != "false")
	return nil
}

// Config holds the MCP server configuration.
type Config struct {
	// Debug enables debug-level logging (MCP_DEBUG).
	Debug      DebugFlag `envconfig:"MCP_DEBUG" default:"false"`
	ServerName string    `envconfig:"MCP_SERVER_NAME" default:"Go Calculator MCP"`
	// LogFile, when set, receives a copy of every log record.
	LogFile string `envconfig:"MCP_LOG_FILE"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Debug:      false,
		ServerName: "Go Calculator MCP",
	}
}
