// Package handlers provides the HTTP handlers of the bridge.
//
// Each endpoint is an http.Handler struct built over a Backend, the small
// interface *ollama.Client satisfies:
//
//   - RootHandler: GET / status document, JSON 404 for unknown paths
//   - HealthHandler: GET /health, passthrough to Ollama's /api/tags
//   - ModelsHandler: GET /v1/models
//   - ChatHandler: POST /v1/chat/completions, JSON or SSE
//   - CompletionHandler: POST /v1/completions, JSON or SSE
//
// # Request Flow
//
//  1. Reject the wrong method with 405 {"detail": "Method Not Allowed"}
//  2. Parse and validate the body (422 or 413 with a detail on failure)
//  3. Translate to the Ollama request
//  4. Call Ollama; any failure before a response starts is a 500 detail
//  5. Translate the reply, or relay the stream frame by frame
//
// Streaming opens the backend call before any SSE header is written, so a
// backend that is down still produces a plain 500.
package handlers
