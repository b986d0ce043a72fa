package config

import "time"

// Default values for configuration fields.
const (
	// Proxy defaults
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8003
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 0
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB

	// CORS defaults
	DefaultCORSEnabled          = true
	DefaultCORSMaxAge           = 600
	DefaultCORSAllowCredentials = true

	// Backend defaults
	DefaultBackendHost         = "http://localhost:11434"
	DefaultModel               = "qwen2.5:7b"
	DefaultRequestTimeout      = 300 * time.Second
	DefaultHealthTimeout       = 5 * time.Second
	DefaultStreamIdleTimeout   = 90 * time.Second
	DefaultProbeSchedule       = "@every 30s"
	DefaultMaxIdleConns        = 100
	DefaultMaxIdleConnsPerHost = 10
	DefaultIdleConnTimeout     = 90 * time.Second

	// Telemetry defaults
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "ollama_bridge"
)

// DefaultCORSAllowedOrigins matches every origin.
var DefaultCORSAllowedOrigins = []string{"*"}

// DefaultCORSAllowedMethods matches every method.
var DefaultCORSAllowedMethods = []string{"*"}

// DefaultCORSAllowedHeaders matches every header.
var DefaultCORSAllowedHeaders = []string{"*"}

// DefaultCORSExposedHeaders lets browser clients read the request ID.
var DefaultCORSExposedHeaders = []string{"X-Request-ID"}

// DefaultRequestDurationBuckets covers local inference latencies from 100ms to 5m.
var DefaultRequestDurationBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300}

// NewDefaultConfig returns a configuration populated only with defaults.
func NewDefaultConfig() *Config {
	cfg := seedConfig()
	ApplyDefaults(cfg)
	return cfg
}

// seedConfig returns the starting point YAML is decoded onto. Boolean
// defaults live here because ApplyDefaults cannot tell false from unset.
func seedConfig() *Config {
	return &Config{
		Telemetry: TelemetryConfig{
			Metrics: MetricsConfig{Enabled: DefaultMetricsEnabled},
		},
	}
}

// ApplyDefaults fills zero-valued fields with their defaults. Fields already
// set, typically from YAML, are left alone.
func ApplyDefaults(cfg *Config) {
	// Proxy defaults
	if cfg.Proxy.Host == "" {
		cfg.Proxy.Host = DefaultHost
	}
	if cfg.Proxy.Port == 0 {
		cfg.Proxy.Port = DefaultPort
	}
	if cfg.Proxy.ReadTimeout == 0 {
		cfg.Proxy.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Proxy.IdleTimeout == 0 {
		cfg.Proxy.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Proxy.ShutdownTimeout == 0 {
		cfg.Proxy.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Proxy.MaxHeaderBytes == 0 {
		cfg.Proxy.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	applyCORSDefaults(cfg)

	// Backend defaults
	if cfg.Backend.Host == "" {
		cfg.Backend.Host = DefaultBackendHost
	}
	if cfg.Backend.DefaultModel == "" {
		cfg.Backend.DefaultModel = DefaultModel
	}
	if cfg.Backend.RequestTimeout == 0 {
		cfg.Backend.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Backend.HealthTimeout == 0 {
		cfg.Backend.HealthTimeout = DefaultHealthTimeout
	}
	if cfg.Backend.StreamIdleTimeout == 0 {
		cfg.Backend.StreamIdleTimeout = DefaultStreamIdleTimeout
	}
	if cfg.Backend.ProbeSchedule == "" {
		cfg.Backend.ProbeSchedule = DefaultProbeSchedule
	}
	if cfg.Backend.MaxIdleConns == 0 {
		cfg.Backend.MaxIdleConns = DefaultMaxIdleConns
	}
	if cfg.Backend.MaxIdleConnsPerHost == 0 {
		cfg.Backend.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	}
	if cfg.Backend.IdleConnTimeout == 0 {
		cfg.Backend.IdleConnTimeout = DefaultIdleConnTimeout
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if len(cfg.Telemetry.Metrics.RequestDurationBuckets) == 0 {
		cfg.Telemetry.Metrics.RequestDurationBuckets = DefaultRequestDurationBuckets
	}
}

// applyCORSDefaults applies CORS defaults. An untouched CORS block (no
// origins configured) gets the fully open posture.
func applyCORSDefaults(cfg *Config) {
	cors := &cfg.Proxy.CORS
	if len(cors.AllowedOrigins) > 0 {
		if len(cors.AllowedMethods) == 0 {
			cors.AllowedMethods = DefaultCORSAllowedMethods
		}
		if len(cors.AllowedHeaders) == 0 {
			cors.AllowedHeaders = DefaultCORSAllowedHeaders
		}
		if cors.MaxAge == 0 {
			cors.MaxAge = DefaultCORSMaxAge
		}
		if cors.ExposedHeaders == nil {
			cors.ExposedHeaders = DefaultCORSExposedHeaders
		}
		return
	}

	cors.Enabled = DefaultCORSEnabled
	cors.AllowedOrigins = DefaultCORSAllowedOrigins
	cors.AllowedMethods = DefaultCORSAllowedMethods
	cors.AllowedHeaders = DefaultCORSAllowedHeaders
	cors.ExposedHeaders = DefaultCORSExposedHeaders
	cors.AllowCredentials = DefaultCORSAllowCredentials
	cors.MaxAge = DefaultCORSMaxAge
}
