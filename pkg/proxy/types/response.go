package types

// Object type names.
const (
	ObjectChatCompletion      = "chat.completion"
	ObjectChatCompletionChunk = "chat.completion.chunk"
	ObjectTextCompletion      = "text_completion"
	ObjectModel               = "model"
	ObjectList                = "list"
)

// FinishReasonStop is the only finish reason the bridge reports.
const FinishReasonStop = "stop"

// ChatCompletionResponse represents an OpenAI-compatible chat completion response.
// This is returned for non-streaming requests.
type ChatCompletionResponse struct {
	// ID is "chatcmpl-" followed by 8 hex characters.
	ID string `json:"id"`

	// Object is always "chat.completion".
	Object string `json:"object"`

	// Created is the Unix timestamp (seconds) of when the response was built.
	Created int64 `json:"created"`

	// Model echoes the requested model.
	Model string `json:"model"`

	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents a single chat completion choice.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage contains token usage statistics.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse represents an OpenAI-compatible text completion response.
type CompletionResponse struct {
	// ID is "cmpl-" followed by 8 hex characters.
	ID string `json:"id"`

	// Object is always "text_completion".
	Object string `json:"object"`

	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   Usage              `json:"usage"`
}

// CompletionChoice represents a single text completion choice.
type CompletionChoice struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}

// ChatCompletionStreamChunk represents a chunk in a streaming chat response.
type ChatCompletionStreamChunk struct {
	ID string `json:"id"`

	// Object is always "chat.completion.chunk".
	Object string `json:"object"`

	Created int64          `json:"created"`
	Model   string         `json:"model"`
	Choices []StreamChoice `json:"choices"`
}

// StreamChoice represents a single choice in a streaming chat response.
type StreamChoice struct {
	Index int   `json:"index"`
	Delta Delta `json:"delta"`

	// FinishReason serializes as null until the terminal chunk.
	FinishReason *string `json:"finish_reason"`
}

// Delta contains incremental content. It serializes as {} when empty.
type Delta struct {
	Content string `json:"content,omitempty"`
}

// CompletionStreamChunk represents a chunk in a streaming text completion.
type CompletionStreamChunk struct {
	ID string `json:"id"`

	// Object is "text_completion", the same as the non-streaming reply.
	Object string `json:"object"`

	Created int64                    `json:"created"`
	Model   string                   `json:"model"`
	Choices []CompletionStreamChoice `json:"choices"`
}

// CompletionStreamChoice represents a single choice in a streaming text completion.
type CompletionStreamChoice struct {
	Text         string  `json:"text"`
	Index        int     `json:"index"`
	FinishReason *string `json:"finish_reason"`
}

// ModelList is the reply of GET /v1/models.
type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}

// ModelInfo describes one model.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// StatusResponse is the reply of GET /.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse is the reply of a successful GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Ollama string `json:"ollama"`
}
