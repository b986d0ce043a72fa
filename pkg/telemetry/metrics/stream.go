package metrics

import (
	"time"

	"ollama-bridge/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Stream outcomes.
const (
	OutcomeCompleted   = "completed"
	OutcomeTruncated   = "truncated"
	OutcomeClientGone  = "client_closed"
	OutcomeIdleTimeout = "idle_timeout"
	OutcomeError       = "error"
)

// StreamMetrics tracks SSE streams relayed from the backend.
//
// Metrics:
//   - stream_events_total{endpoint,kind}
//   - streams_total{endpoint,outcome}
//   - stream_first_token_seconds{endpoint}
type StreamMetrics struct {
	eventsTotal  *prometheus.CounterVec
	streamsTotal *prometheus.CounterVec
	firstToken   *prometheus.HistogramVec
}

// NewStreamMetrics creates and registers stream metrics.
func NewStreamMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *StreamMetrics {
	sm := &StreamMetrics{
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "stream_events_total",
				Help:      "Backend stream lines by kind (content, done, skip, malformed)",
			},
			[]string{"endpoint", "kind"},
		),

		streamsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "streams_total",
				Help:      "Finished streams by outcome",
			},
			[]string{"endpoint", "outcome"},
		),

		firstToken: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "stream_first_token_seconds",
				Help:      "Time from request start to the first content frame",
				Buckets:   cfg.RequestDurationBuckets,
			},
			[]string{"endpoint"},
		),
	}

	registry.MustRegister(sm.eventsTotal, sm.streamsTotal, sm.firstToken)

	return sm
}

// RecordEvent counts one stream line.
func (sm *StreamMetrics) RecordEvent(endpoint, kind string) {
	sm.eventsTotal.WithLabelValues(endpoint, kind).Inc()
}

// RecordOutcome counts one finished stream.
func (sm *StreamMetrics) RecordOutcome(endpoint, outcome string) {
	sm.streamsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// RecordFirstToken observes time to first token.
func (sm *StreamMetrics) RecordFirstToken(endpoint string, delay time.Duration) {
	sm.firstToken.WithLabelValues(endpoint).Observe(delay.Seconds())
}
