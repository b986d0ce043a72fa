// Package proxy translates between the OpenAI-compatible API served by the
// bridge and the Ollama API it forwards to.
//
// Per request the pieces compose linearly:
//
//	handler → Parse*Request → ToOllama*Request → backend call → Format*Response / Reframer → writer
//
// The translators hold no state and read no configuration; defaults such as
// the model name are passed in by the caller.
//
// # Streaming
//
// A Reframer maps each ollama.Event of a streamed reply to zero or more
// Server-Sent Events frames:
//
//	data: {"id":"chatcmpl-1a2b3c4d","object":"chat.completion.chunk",...}
//
//	data: [DONE]
//
// Chat streams end with an empty-delta chunk carrying finish_reason "stop"
// before the sentinel; text completion streams end with the sentinel only.
// A backend stream that stops without a done line produces no terminal
// frames.
//
// # Subpackages
//
//   - handlers: HTTP handlers for each route
//   - middleware: recovery, logging, request ID, CORS and metrics middleware
//   - types: OpenAI-compatible request/response bodies
package proxy
