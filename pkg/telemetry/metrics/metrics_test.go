package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ollama-bridge/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:                true,
		Namespace:              "test",
		RequestDurationBuckets: []float64{0.1, 0.5, 1.0, 5.0},
	}
}

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	return NewCollector(testConfig(), prometheus.NewRegistry())
}

func TestNewCollector_Defaults(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	c := NewCollector(cfg, nil)

	if c.Registry() == nil {
		t.Fatal("expected a registry")
	}
	if cfg.Namespace != config.DefaultMetricsNamespace {
		t.Errorf("Namespace = %q, want %q", cfg.Namespace, config.DefaultMetricsNamespace)
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		t.Error("expected default buckets")
	}
}

func TestCollector_RecordHTTPRequest(t *testing.T) {
	c := newTestCollector(t)

	c.RecordHTTPRequest("GET", "/health", 200, 10*time.Millisecond)
	c.RecordHTTPRequest("GET", "/health", 200, 20*time.Millisecond)
	c.RecordHTTPRequest("GET", "/health", 503, 5*time.Second)

	if got := testutil.ToFloat64(c.httpMetrics.requestsTotal.WithLabelValues("GET", "/health", "200")); got != 2 {
		t.Errorf("200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpMetrics.requestsTotal.WithLabelValues("GET", "/health", "503")); got != 1 {
		t.Errorf("503 count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(c.httpMetrics.requestDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestCollector_RecordCompletionAndTokens(t *testing.T) {
	c := newTestCollector(t)

	c.RecordCompletion("chat", "llama3", "success", time.Second)
	c.RecordTokens("chat", "llama3", 3, 5)
	c.RecordTokens("chat", "llama3", 0, 2)

	if got := testutil.ToFloat64(c.completionMetrics.completionsTotal.WithLabelValues("chat", "llama3", "success")); got != 1 {
		t.Errorf("completions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.completionMetrics.tokensTotal.WithLabelValues("chat", "llama3", "prompt")); got != 3 {
		t.Errorf("prompt tokens = %v, want 3", got)
	}
	if got := testutil.ToFloat64(c.completionMetrics.tokensTotal.WithLabelValues("chat", "llama3", "completion")); got != 7 {
		t.Errorf("completion tokens = %v, want 7", got)
	}
}

func TestCollector_RecordStream(t *testing.T) {
	c := newTestCollector(t)

	c.RecordStreamEvent("completion", "content")
	c.RecordStreamEvent("completion", "malformed")
	c.RecordStreamEvent("completion", "content")
	c.RecordStreamOutcome("completion", OutcomeIdleTimeout)
	c.RecordFirstToken("completion", 200*time.Millisecond)

	if got := testutil.ToFloat64(c.streamMetrics.eventsTotal.WithLabelValues("completion", "content")); got != 2 {
		t.Errorf("content events = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.streamMetrics.eventsTotal.WithLabelValues("completion", "malformed")); got != 1 {
		t.Errorf("malformed events = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.streamMetrics.streamsTotal.WithLabelValues("completion", OutcomeIdleTimeout)); got != 1 {
		t.Errorf("idle timeouts = %v, want 1", got)
	}
}

func TestCollector_RecordBackendProbe(t *testing.T) {
	c := newTestCollector(t)

	c.RecordBackendProbe(true, 5*time.Millisecond)
	if got := testutil.ToFloat64(c.backendMetrics.up); got != 1 {
		t.Errorf("backend_up = %v, want 1", got)
	}

	c.RecordBackendProbe(false, 5*time.Second)
	if got := testutil.ToFloat64(c.backendMetrics.up); got != 0 {
		t.Errorf("backend_up = %v, want 0", got)
	}
	if got := testutil.ToFloat64(c.backendMetrics.probesTotal.WithLabelValues("failure")); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
}

func TestCollector_DisabledAndNil(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	c := NewCollector(cfg, prometheus.NewRegistry())

	c.RecordCompletion("chat", "m", "success", time.Second)
	if got := testutil.CollectAndCount(c.completionMetrics.completionsTotal); got != 0 {
		t.Errorf("disabled collector recorded %d series", got)
	}

	var nilCollector *Collector
	nilCollector.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	nilCollector.RecordStreamOutcome("chat", OutcomeCompleted)
	if nilCollector.Enabled() {
		t.Error("nil collector should report disabled")
	}
}

func TestCollector_Handler(t *testing.T) {
	c := newTestCollector(t)
	c.RecordBackendProbe(true, time.Millisecond)

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "test_backend_up 1") {
		t.Errorf("exposition missing backend_up:\n%s", w.Body.String())
	}
}
