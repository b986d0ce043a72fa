// Package health runs the scheduled background probe of the Ollama backend.
//
// The Prober pings the backend on a cron schedule (default "@every 30s"),
// publishes the result through the backend_up metric and logs when the
// backend goes up or down. It only reports: requests are never held back
// or rerouted on its account, and GET /health still checks the backend
// live on every call.
//
//	prober := health.NewProber(client, cfg.Backend.ProbeSchedule, collector)
//	if err := prober.Start(ctx); err != nil {
//	    return err
//	}
//	defer prober.Stop()
package health
