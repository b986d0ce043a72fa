package types

import "encoding/json"

// DefaultTemperature is applied when a request omits temperature.
const DefaultTemperature = 0.7

// ChatCompletionRequest represents an OpenAI-compatible chat completion request.
type ChatCompletionRequest struct {
	// Model is the model identifier. Empty means the configured default.
	Model string `json:"model,omitempty"`

	// Messages is the conversation so far. It must be present; an empty
	// list is passed through for the backend to judge.
	Messages []Message `json:"messages"`

	// Temperature controls randomness. Nil means DefaultTemperature.
	Temperature *float64 `json:"temperature,omitempty"`

	// MaxTokens limits the number of generated tokens. Nil or zero leaves
	// the backend default in place.
	MaxTokens *int `json:"max_tokens,omitempty"`

	// Stream enables Server-Sent Events streaming.
	Stream bool `json:"stream,omitempty"`
}

// Message is a single message in a conversation.
type Message struct {
	// Role is the author: "system", "user" or "assistant".
	Role string `json:"role"`

	// Content is the text of the message.
	Content string `json:"content"`

	// missing names the first required field absent (or null) in the
	// decoded JSON. Empty strings count as present.
	missing string
}

// UnmarshalJSON decodes a message and records whether role and content were
// present, so Validate can reject absent fields while accepting "".
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    *string `json:"role"`
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = Message{}
	switch {
	case raw.Role == nil:
		m.missing = "role"
	case raw.Content == nil:
		m.missing = "content"
	}
	if raw.Role != nil {
		m.Role = *raw.Role
	}
	if raw.Content != nil {
		m.Content = *raw.Content
	}
	return nil
}

// CompletionRequest represents an OpenAI-compatible legacy text completion request.
type CompletionRequest struct {
	Model string `json:"model,omitempty"`

	// Prompt is required. Nil means the field was absent.
	Prompt *string `json:"prompt"`

	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
	Stream      bool     `json:"stream,omitempty"`
}

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate checks that the required fields are present.
func (r *ChatCompletionRequest) Validate() error {
	if r.Messages == nil {
		return &ValidationError{Field: "messages", Message: "field required"}
	}
	for _, msg := range r.Messages {
		if msg.missing != "" {
			return &ValidationError{Field: "messages." + msg.missing, Message: "field required"}
		}
	}
	return nil
}

// ApplyDefaults fills in the model and temperature when omitted.
func (r *ChatCompletionRequest) ApplyDefaults(defaultModel string) {
	if r.Model == "" {
		r.Model = defaultModel
	}
	if r.Temperature == nil {
		t := DefaultTemperature
		r.Temperature = &t
	}
}

// Validate checks that the required fields are present.
func (r *CompletionRequest) Validate() error {
	if r.Prompt == nil {
		return &ValidationError{Field: "prompt", Message: "field required"}
	}
	return nil
}

// ApplyDefaults fills in the model and temperature when omitted.
func (r *CompletionRequest) ApplyDefaults(defaultModel string) {
	if r.Model == "" {
		r.Model = defaultModel
	}
	if r.Temperature == nil {
		t := DefaultTemperature
		r.Temperature = &t
	}
}
