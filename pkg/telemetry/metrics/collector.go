package metrics

import (
	"time"

	"ollama-bridge/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector owns the bridge's Prometheus metrics. Every Record method is
// safe on a nil *Collector and on a disabled one, so callers never need to
// check whether metrics are on.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	httpMetrics       *HTTPMetrics
	completionMetrics *CompletionMetrics
	streamMetrics     *StreamMetrics
	backendMetrics    *BackendMetrics
}

// NewCollector creates a collector registering into registry. A nil
// registry gets a fresh one with the Go runtime and process collectors.
//
// Example:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		cfg.RequestDurationBuckets = config.DefaultRequestDurationBuckets
	}

	return &Collector{
		config:            cfg,
		registry:          registry,
		httpMetrics:       NewHTTPMetrics(cfg, registry),
		completionMetrics: NewCompletionMetrics(cfg, registry),
		streamMetrics:     NewStreamMetrics(cfg, registry),
		backendMetrics:    NewBackendMetrics(cfg, registry),
	}
}

// Registry returns the registry the collector writes to.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Enabled reports whether recording is on.
func (c *Collector) Enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordHTTPRequest records one served HTTP request.
func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.httpMetrics.Record(method, path, status, duration)
}

// RecordCompletion records a finished completion call. endpoint is "chat"
// or "completion"; status is "success" or "error".
func (c *Collector) RecordCompletion(endpoint, model, status string, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.completionMetrics.RecordCompletion(endpoint, model, status, duration)
}

// RecordTokens adds the token counts reported by the backend.
func (c *Collector) RecordTokens(endpoint, model string, promptTokens, completionTokens int) {
	if !c.Enabled() {
		return
	}
	c.completionMetrics.RecordTokens(endpoint, model, promptTokens, completionTokens)
}

// RecordStreamEvent counts one backend stream line by kind
// ("content", "done", "skip", "malformed").
func (c *Collector) RecordStreamEvent(endpoint, kind string) {
	if !c.Enabled() {
		return
	}
	c.streamMetrics.RecordEvent(endpoint, kind)
}

// RecordFirstToken records the delay before the first content frame.
func (c *Collector) RecordFirstToken(endpoint string, delay time.Duration) {
	if !c.Enabled() {
		return
	}
	c.streamMetrics.RecordFirstToken(endpoint, delay)
}

// RecordStreamOutcome records how a stream ended.
func (c *Collector) RecordStreamOutcome(endpoint, outcome string) {
	if !c.Enabled() {
		return
	}
	c.streamMetrics.RecordOutcome(endpoint, outcome)
}

// RecordBackendProbe records one health probe of the backend.
func (c *Collector) RecordBackendProbe(healthy bool, duration time.Duration) {
	if !c.Enabled() {
		return
	}
	c.backendMetrics.RecordProbe(healthy, duration)
}
