// Package config provides configuration management for the bridge.
//
// Configuration is assembled once at process start and then passed by
// pointer to the server and handlers. Nothing in the request path reads the
// environment directly.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// An empty path skips the file and starts from defaults.
//
// # Environment Variable Overrides
//
// Three plain variables are honoured as-is:
//
//   - OLLAMA_HOST overrides backend.host
//   - DEFAULT_MODEL overrides backend.default_model
//   - PORT overrides proxy.port
//
// Additional knobs use the BRIDGE_ prefix, e.g. BRIDGE_LOG_LEVEL and
// BRIDGE_STREAM_IDLE_TIMEOUT.
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// There is no hot reload.
package config
