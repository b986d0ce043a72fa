package handlers

import (
	"context"

	"ollama-bridge/pkg/ollama"
)

// Backend is the Ollama API surface the handlers need. *ollama.Client
// implements it.
type Backend interface {
	Chat(ctx context.Context, req *ollama.ChatRequest) (*ollama.ChatResponse, error)
	Generate(ctx context.Context, req *ollama.GenerateRequest) (*ollama.GenerateResponse, error)
	Tags(ctx context.Context) (*ollama.TagsResponse, error)
	Ping(ctx context.Context) error
	StreamChat(ctx context.Context, req *ollama.ChatRequest) (*ollama.Stream, error)
	StreamGenerate(ctx context.Context, req *ollama.GenerateRequest) (*ollama.Stream, error)
}

// Endpoint names used as metric labels.
const (
	EndpointChat       = "chat"
	EndpointCompletion = "completion"
)

// Completion call statuses used as metric labels.
const (
	statusSuccess = "success"
	statusError   = "error"
)
