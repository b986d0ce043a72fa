package metrics

import (
	"time"

	"ollama-bridge/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CompletionMetrics tracks chat and text completion calls.
//
// Metrics:
//   - completions_total{endpoint,model,status}
//   - completion_duration_seconds{endpoint,model}
//   - tokens_total{endpoint,model,type}, type is "prompt" or "completion"
type CompletionMetrics struct {
	completionsTotal   *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
	tokensTotal        *prometheus.CounterVec
}

// NewCompletionMetrics creates and registers completion metrics.
func NewCompletionMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CompletionMetrics {
	cm := &CompletionMetrics{
		completionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "completions_total",
				Help:      "Total number of completion calls by endpoint, model and status",
			},
			[]string{"endpoint", "model", "status"},
		),

		completionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "completion_duration_seconds",
				Help:      "Duration of completion calls in seconds",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"endpoint", "model"},
		),

		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "tokens_total",
				Help:      "Total number of tokens reported by the backend",
			},
			[]string{"endpoint", "model", "type"},
		),
	}

	registry.MustRegister(cm.completionsTotal, cm.completionDuration, cm.tokensTotal)

	return cm
}

// RecordCompletion records one call.
func (cm *CompletionMetrics) RecordCompletion(endpoint, model, status string, duration time.Duration) {
	cm.completionsTotal.WithLabelValues(endpoint, model, status).Inc()
	cm.completionDuration.WithLabelValues(endpoint, model).Observe(duration.Seconds())
}

// RecordTokens adds prompt and completion token counts. Zero counts are skipped.
func (cm *CompletionMetrics) RecordTokens(endpoint, model string, promptTokens, completionTokens int) {
	if promptTokens > 0 {
		cm.tokensTotal.WithLabelValues(endpoint, model, "prompt").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		cm.tokensTotal.WithLabelValues(endpoint, model, "completion").Add(float64(completionTokens))
	}
}
