package proxy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ollama-bridge/pkg/ollama"
	"ollama-bridge/pkg/proxy/types"
)

// Response ID prefixes.
const (
	ChatIDPrefix       = "chatcmpl-"
	CompletionIDPrefix = "cmpl-"
)

// NewResponseID returns prefix followed by 8 random hex characters.
func NewResponseID(prefix string) string {
	// The first group of a UUID string is 8 hex digits.
	return prefix + uuid.New().String()[:8]
}

// FormatChatCompletionResponse converts a complete /api/chat reply to an
// OpenAI chat completion. It fails with a ProtocolError wrapping
// ollama.ErrMissingField when the reply has no message.
//
// finish_reason is always "stop": the non-streaming reply carries no richer
// termination signal.
func FormatChatCompletionResponse(resp *ollama.ChatResponse, model string) (*types.ChatCompletionResponse, error) {
	if resp.Message == nil {
		return nil, ollama.MissingField(ollama.PathChat, "message")
	}

	return &types.ChatCompletionResponse{
		ID:      NewResponseID(ChatIDPrefix),
		Object:  types.ObjectChatCompletion,
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []types.Choice{
			{
				Index: 0,
				Message: types.Message{
					Role:    "assistant",
					Content: resp.Message.Content,
				},
				FinishReason: types.FinishReasonStop,
			},
		},
		Usage: usage(resp.PromptEvalCount, resp.EvalCount),
	}, nil
}

// FormatCompletionResponse converts a complete /api/generate reply to an
// OpenAI text completion. It fails when the reply has no response field.
func FormatCompletionResponse(resp *ollama.GenerateResponse, model string) (*types.CompletionResponse, error) {
	if resp.Response == nil {
		return nil, ollama.MissingField(ollama.PathGenerate, "response")
	}

	return &types.CompletionResponse{
		ID:      NewResponseID(CompletionIDPrefix),
		Object:  types.ObjectTextCompletion,
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []types.CompletionChoice{
			{
				Text:         *resp.Response,
				Index:        0,
				FinishReason: types.FinishReasonStop,
			},
		},
		Usage: usage(resp.PromptEvalCount, resp.EvalCount),
	}, nil
}

// FormatModelList converts /api/tags to the /v1/models list, keeping order.
func FormatModelList(tags *ollama.TagsResponse) *types.ModelList {
	created := time.Now().Unix()

	data := make([]types.ModelInfo, 0, len(tags.Models))
	for _, m := range tags.Models {
		data = append(data, types.ModelInfo{
			ID:      m.Name,
			Object:  types.ObjectModel,
			Created: created,
			OwnedBy: "ollama",
		})
	}

	return &types.ModelList{Object: types.ObjectList, Data: data}
}

func usage(promptTokens, completionTokens int) types.Usage {
	return types.Usage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
}

// WriteJSONResponse writes a JSON response to the HTTP response writer.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// WriteDetailResponse writes a {"detail": ...} error body.
func WriteDetailResponse(w http.ResponseWriter, statusCode int, detail string) error {
	return WriteJSONResponse(w, statusCode, types.NewDetailResponse(detail))
}

// SetSSEHeaders sets the appropriate headers for Server-Sent Events streaming.
func SetSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

// WriteSSEFrame writes an already framed SSE message and flushes it.
func WriteSSEFrame(w http.ResponseWriter, frame []byte) error {
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("failed to write SSE frame: %w", err)
	}

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	return nil
}

// WriteSSEDone writes the final "[DONE]" marker for SSE streams.
func WriteSSEDone(w http.ResponseWriter) error {
	return WriteSSEFrame(w, DoneFrame)
}

// WriteSSEError writes an error payload as an SSE frame. It is used once
// the 200 status has been sent and an HTTP error is no longer possible.
func WriteSSEError(w http.ResponseWriter, errResp *types.ErrorResponse) error {
	frame, err := encodeFrame(errResp)
	if err != nil {
		return err
	}
	return WriteSSEFrame(w, frame)
}
