// Package ollama is a client for the subset of the Ollama HTTP API the
// bridge forwards to: /api/chat, /api/generate and /api/tags.
//
// Non-streaming calls return decoded responses. Streaming calls return a
// Stream, a single-pass producer that turns each newline-delimited JSON line
// of the reply into an Event tagged Content, Done or Skip. Malformed lines
// become Skip events carrying ErrMalformedLine and never fail the stream.
//
// Errors are typed so callers can map them without string matching:
//
//   - *UnreachableError: the backend could not be reached or timed out
//   - *ProtocolError: the backend answered, but not with what was expected
//   - *StreamError: a streamed reply broke off or went idle
//
// Calls are never retried.
package ollama
