package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration structure for the bridge.
type Config struct {
	// Proxy contains settings for the inbound OpenAI-compatible HTTP server.
	Proxy ProxyConfig `yaml:"proxy"`

	// Backend contains settings for the Ollama server requests are forwarded to.
	Backend BackendConfig `yaml:"backend"`

	// Telemetry contains logging and metrics settings.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ProxyConfig contains settings for the HTTP listener.
type ProxyConfig struct {
	// Host is the interface to bind to.
	Host string `yaml:"host"`

	// Port is the TCP port to listen on.
	Port int `yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// Zero disables the deadline, which streaming responses rely on.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum time to wait for the next request on keep-alive connections.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will read parsing request headers.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS contains Cross-Origin Resource Sharing settings.
	CORS CORSConfig `yaml:"cors"`
}

// ListenAddress returns the host:port pair the server binds to.
func (p ProxyConfig) ListenAddress() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// CORSConfig contains CORS settings. A "*" entry matches everything.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// BackendConfig describes the Ollama server.
type BackendConfig struct {
	// Host is the base URL of the Ollama API, e.g. http://localhost:11434.
	Host string `yaml:"host"`

	// DefaultModel is used when a request does not name a model.
	DefaultModel string `yaml:"default_model"`

	// RequestTimeout bounds non-streaming chat, generate and tags calls.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// HealthTimeout bounds the passthrough health check.
	HealthTimeout time.Duration `yaml:"health_timeout"`

	// StreamIdleTimeout is the longest gap allowed between two lines of a
	// streamed reply. Streams have no overall deadline.
	StreamIdleTimeout time.Duration `yaml:"stream_idle_timeout"`

	// ProbeSchedule is a cron expression for the background reachability
	// probe. "off" disables the probe.
	ProbeSchedule string `yaml:"probe_schedule"`

	// Connection pool settings for the outbound transport.
	MaxIdleConns        int           `yaml:"max_idle_conns"`
	MaxIdleConnsPerHost int           `yaml:"max_idle_conns_per_host"`
	IdleConnTimeout     time.Duration `yaml:"idle_conn_timeout"`
}

// TelemetryConfig contains observability settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "json" or "text".
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`

	// RequestDurationBuckets are histogram buckets in seconds.
	RequestDurationBuckets []float64 `yaml:"request_duration_buckets"`
}
