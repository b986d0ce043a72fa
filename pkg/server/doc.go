// Package server wires the bridge's handlers and middleware into an
// http.Server and manages its lifecycle.
//
// # Routes
//
//	GET  /                     status document
//	GET  /health               passthrough health check of Ollama
//	GET  /v1/models            model list
//	POST /v1/chat/completions  chat completion, JSON or SSE
//	POST /v1/completions       text completion, JSON or SSE
//	GET  /metrics              Prometheus exposition (when enabled)
//
// # Basic Usage
//
//	client := ollama.NewClient(ollama.ClientConfig{BaseURL: cfg.Backend.Host, ...})
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	srv := server.NewServer(cfg, client, collector)
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Start blocks until the context is cancelled or SIGINT/SIGTERM arrives,
// then shuts down gracefully within proxy.shutdown_timeout.
package server
