// Package metrics exposes Prometheus metrics for the bridge.
//
// Metric families, all under the configured namespace (default
// "ollama_bridge"):
//
//   - http_requests_total, http_request_duration_seconds: every request served
//   - completions_total, completion_duration_seconds, tokens_total: chat and
//     text completion calls, with token counts as reported by Ollama
//   - stream_events_total, streams_total, stream_first_token_seconds: SSE
//     relays, including skipped malformed lines and how each stream ended
//   - backend_up, backend_probes_total, backend_probe_duration_seconds: the
//     scheduled backend probe
//
// A Collector is created once at startup and passed to the server, the
// handlers and the prober. Its methods are no-ops on a nil or disabled
// Collector.
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.RecordCompletion("chat", "qwen2.5:7b", "success", elapsed)
//	mux.Handle("/metrics", collector.Handler())
package metrics
