// Package types defines the OpenAI-compatible request and response bodies
// served by the bridge.
//
// Request types:
//   - ChatCompletionRequest: body of POST /v1/chat/completions
//   - CompletionRequest: body of POST /v1/completions
//
// Response types:
//   - ChatCompletionResponse, CompletionResponse: non-streaming replies
//   - ChatCompletionStreamChunk, CompletionStreamChunk: SSE payloads
//   - ModelList: reply of GET /v1/models
//
// Error types:
//   - DetailResponse: the {"detail": "..."} body used for every HTTP error
//   - ErrorResponse: the {"error": {...}} payload of a mid-stream SSE error frame
//
// Field names follow OpenAI's snake_case JSON convention so standard SDKs
// work unmodified:
//
//	from openai import OpenAI
//	client = OpenAI(base_url="http://localhost:8003/v1", api_key="unused")
//	client.chat.completions.create(model="qwen2.5:7b", messages=[...])
package types
