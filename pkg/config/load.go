package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path and
// applies defaults and validation. An empty path yields the defaults.
// Environment variables are not consulted; use LoadConfigWithEnvOverrides
// for that.
func LoadConfig(path string) (*Config, error) {
	cfg := seedConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides on top. Environment variables always take
// precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file (if path is non-empty)
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	// Plain variables used by existing deployments
	if val := os.Getenv("OLLAMA_HOST"); val != "" {
		cfg.Backend.Host = val
	}
	if val := os.Getenv("DEFAULT_MODEL"); val != "" {
		cfg.Backend.DefaultModel = val
	}
	if val := os.Getenv("PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", val, err)
		}
		cfg.Proxy.Port = port
	}

	// Proxy overrides
	if val := os.Getenv("BRIDGE_HOST"); val != "" {
		cfg.Proxy.Host = val
	}
	if val := os.Getenv("BRIDGE_SHUTDOWN_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid BRIDGE_SHUTDOWN_TIMEOUT %q: %w", val, err)
		}
		cfg.Proxy.ShutdownTimeout = d
	}

	// Backend overrides
	if val := os.Getenv("BRIDGE_REQUEST_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid BRIDGE_REQUEST_TIMEOUT %q: %w", val, err)
		}
		cfg.Backend.RequestTimeout = d
	}
	if val := os.Getenv("BRIDGE_STREAM_IDLE_TIMEOUT"); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid BRIDGE_STREAM_IDLE_TIMEOUT %q: %w", val, err)
		}
		cfg.Backend.StreamIdleTimeout = d
	}
	if val := os.Getenv("BRIDGE_PROBE_SCHEDULE"); val != "" {
		cfg.Backend.ProbeSchedule = val
	}

	// Telemetry overrides
	if val := os.Getenv("BRIDGE_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("BRIDGE_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("BRIDGE_METRICS_ENABLED"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid BRIDGE_METRICS_ENABLED %q: %w", val, err)
		}
		cfg.Telemetry.Metrics.Enabled = b
	}

	return nil
}
