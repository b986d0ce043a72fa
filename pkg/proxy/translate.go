package proxy

import (
	"ollama-bridge/pkg/ollama"
	"ollama-bridge/pkg/proxy/types"
)

// ToOllamaChatRequest maps a chat completion request onto /api/chat.
// stream and temperature are copied as-is; num_predict is set only for a
// non-zero max_tokens.
func ToOllamaChatRequest(req *types.ChatCompletionRequest) *ollama.ChatRequest {
	messages := make([]ollama.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, ollama.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return &ollama.ChatRequest{
		Model:    req.Model,
		Messages: messages,
		Stream:   req.Stream,
		Options:  buildOptions(req.Temperature, req.MaxTokens),
	}
}

// ToOllamaGenerateRequest maps a text completion request onto /api/generate.
func ToOllamaGenerateRequest(req *types.CompletionRequest) *ollama.GenerateRequest {
	var prompt string
	if req.Prompt != nil {
		prompt = *req.Prompt
	}

	return &ollama.GenerateRequest{
		Model:   req.Model,
		Prompt:  prompt,
		Stream:  req.Stream,
		Options: buildOptions(req.Temperature, req.MaxTokens),
	}
}

func buildOptions(temperature *float64, maxTokens *int) ollama.Options {
	opts := ollama.Options{Temperature: types.DefaultTemperature}
	if temperature != nil {
		opts.Temperature = *temperature
	}
	if maxTokens != nil && *maxTokens != 0 {
		n := *maxTokens
		opts.NumPredict = &n
	}
	return opts
}
