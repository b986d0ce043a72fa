// Package middleware provides HTTP middleware for cross-cutting concerns.
//
// # Middleware Chain
//
// The server wraps its mux as:
//
//	handler = Recovery(RequestID(Logging(CORS(Metrics(mux)))))
//
// Order (outermost first):
//  1. Recovery: turn panics into 500 {"detail": "Internal Server Error"}
//  2. RequestID: take X-Request-ID or generate a UUID, store it for logging
//  3. Logging: one "request completed" line per request
//  4. CORS: open policy with credentials; answers preflights with 204
//  5. Metrics: request count and duration per known route
//
// The response writer wrapper shared by Recovery, Logging and Metrics
// implements http.Flusher so SSE frames are not held back.
//
// # Log Fields
//
//	{
//	  "level": "INFO",
//	  "msg": "request completed",
//	  "method": "POST",
//	  "path": "/v1/chat/completions",
//	  "status": 200,
//	  "bytes": 5120,
//	  "latency_ms": 1250,
//	  "remote_addr": "127.0.0.1:54321",
//	  "request_id": "550e8400-e29b-41d4-a716-446655440000"
//	}
package middleware
