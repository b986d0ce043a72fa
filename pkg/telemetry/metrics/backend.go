package metrics

import (
	"time"

	"ollama-bridge/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// BackendMetrics tracks the scheduled Ollama health probe.
//
// Metrics:
//   - backend_up: 1 if the last probe succeeded, 0 otherwise
//   - backend_probes_total{result}
//   - backend_probe_duration_seconds
type BackendMetrics struct {
	up            prometheus.Gauge
	probesTotal   *prometheus.CounterVec
	probeDuration prometheus.Histogram
}

// NewBackendMetrics creates and registers backend metrics.
func NewBackendMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *BackendMetrics {
	bm := &BackendMetrics{
		up: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "backend_up",
				Help:      "Whether the last backend health probe succeeded (1=up, 0=down)",
			},
		),

		probesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "backend_probes_total",
				Help:      "Backend health probes by result",
			},
			[]string{"result"},
		),

		probeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "backend_probe_duration_seconds",
				Help:      "Duration of backend health probes in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
		),
	}

	registry.MustRegister(bm.up, bm.probesTotal, bm.probeDuration)

	return bm
}

// RecordProbe records one probe result.
func (bm *BackendMetrics) RecordProbe(healthy bool, duration time.Duration) {
	result := "failure"
	value := 0.0
	if healthy {
		result = "success"
		value = 1
	}
	bm.up.Set(value)
	bm.probesTotal.WithLabelValues(result).Inc()
	bm.probeDuration.Observe(duration.Seconds())
}
