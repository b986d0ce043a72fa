// Package telemetry groups the bridge's observability packages.
//
// # Components
//
//   - logging: slog construction and request-scoped attributes
//   - metrics: Prometheus collectors for HTTP traffic, completions, streams
//     and backend reachability
//   - health: scheduled backend probe feeding the backend_up gauge
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//		return err
//	}
//	slog.SetDefault(logger)
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	prober := health.NewProber(client, cfg.Backend.ProbeSchedule, collector)
//	if err := prober.Start(ctx); err != nil {
//		return err
//	}
//	defer prober.Stop()
//
// Every log record written through a context carrying a request ID gets a
// request_id attribute, so handler and backend client logs for one call can
// be correlated with the X-Request-ID response header.
package telemetry
