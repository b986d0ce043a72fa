package ollama

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options carries sampling parameters. NumPredict is omitted entirely when
// nil so the backend applies its own default.
type Options struct {
	Temperature float64 `json:"temperature"`
	NumPredict  *int    `json:"num_predict,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
	Options  Options   `json:"options"`
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Model   string  `json:"model"`
	Prompt  string  `json:"prompt"`
	Stream  bool    `json:"stream"`
	Options Options `json:"options"`
}

// ChatResponse is a complete /api/chat reply. Message is nil when the
// backend omitted it.
type ChatResponse struct {
	Model           string   `json:"model"`
	CreatedAt       string   `json:"created_at"`
	Message         *Message `json:"message"`
	Done            bool     `json:"done"`
	DoneReason      string   `json:"done_reason,omitempty"`
	PromptEvalCount int      `json:"prompt_eval_count"`
	EvalCount       int      `json:"eval_count"`
}

// GenerateResponse is a complete /api/generate reply. Response is nil when
// the backend omitted it.
type GenerateResponse struct {
	Model           string  `json:"model"`
	CreatedAt       string  `json:"created_at"`
	Response        *string `json:"response"`
	Done            bool    `json:"done"`
	DoneReason      string  `json:"done_reason,omitempty"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}

// Chunk is one line of a streamed reply from either endpoint.
type Chunk struct {
	Model           string   `json:"model"`
	Message         *Message `json:"message,omitempty"`
	Response        string   `json:"response,omitempty"`
	Done            bool     `json:"done"`
	DoneReason      string   `json:"done_reason,omitempty"`
	PromptEvalCount int      `json:"prompt_eval_count,omitempty"`
	EvalCount       int      `json:"eval_count,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// TagsResponse is the reply of GET /api/tags.
type TagsResponse struct {
	Models []Model `json:"models"`
}

// Model is one locally available model.
type Model struct {
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Digest     string `json:"digest,omitempty"`
}

// errorBody is the shape Ollama uses for error replies and error lines.
type errorBody struct {
	Error string `json:"error"`
}
