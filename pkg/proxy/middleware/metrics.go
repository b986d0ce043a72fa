package middleware

import (
	"net/http"
	"time"

	"ollama-bridge/pkg/telemetry/metrics"
)

// otherPath labels requests for paths outside the known route set.
const otherPath = "other"

// MetricsMiddleware records a request count and duration for every request.
// The path label is the request path when it is one of routes and "other"
// otherwise, keeping label cardinality bounded.
//
// Example usage:
//
//	handler = MetricsMiddleware(collector, "/", "/health")(handler)
func MetricsMiddleware(collector *metrics.Collector, routes ...string) func(http.Handler) http.Handler {
	known := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		known[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if !collector.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			path := r.URL.Path
			if _, ok := known[path]; !ok {
				path = otherPath
			}
			collector.RecordHTTPRequest(r.Method, path, rw.statusCode, time.Since(start))
		})
	}
}
