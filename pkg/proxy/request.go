package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ollama-bridge/pkg/proxy/types"
)

// MaxRequestBodySize is the maximum allowed request body size (10MB).
const MaxRequestBodySize = 10 * 1024 * 1024

// RequestError represents a request parsing or validation error.
type RequestError struct {
	// StatusCode is 413 for oversized bodies and 422 otherwise.
	StatusCode int
	Message    string
	Param      string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// ParseChatCompletionRequest decodes and validates a chat completion request
// body, then applies the default model and temperature.
func ParseChatCompletionRequest(r *http.Request, defaultModel string) (*types.ChatCompletionRequest, error) {
	var req types.ChatCompletionRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	req.ApplyDefaults(defaultModel)
	return &req, nil
}

// ParseCompletionRequest decodes and validates a text completion request
// body, then applies the default model and temperature.
func ParseCompletionRequest(r *http.Request, defaultModel string) (*types.CompletionRequest, error) {
	var req types.CompletionRequest
	if err := decodeBody(r, &req); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	req.ApplyDefaults(defaultModel)
	return &req, nil
}

// decodeBody reads at most MaxRequestBodySize bytes and unmarshals them into v.
func decodeBody(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if len(body) > MaxRequestBodySize {
		return &RequestError{
			StatusCode: http.StatusRequestEntityTooLarge,
			Message:    fmt.Sprintf("request body exceeds maximum size of %d bytes", MaxRequestBodySize),
			Param:      "body",
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &RequestError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    fmt.Sprintf("invalid JSON: %v", err),
			Param:      "body",
		}
	}

	return nil
}

func validationError(err error) error {
	if valErr, ok := err.(*types.ValidationError); ok {
		return &RequestError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    valErr.Error(),
			Param:      valErr.Field,
		}
	}
	return err
}
