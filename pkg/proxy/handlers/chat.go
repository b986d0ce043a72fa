package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ollama-bridge/pkg/proxy"
	"ollama-bridge/pkg/telemetry/metrics"
)

// ChatHandler serves POST /v1/chat/completions by way of Ollama's /api/chat.
type ChatHandler struct {
	Backend      Backend
	DefaultModel string
	Metrics      *metrics.Collector
}

// NewChatHandler creates a new chat handler. collector may be nil.
func NewChatHandler(backend Backend, defaultModel string, collector *metrics.Collector) *ChatHandler {
	return &ChatHandler{Backend: backend, DefaultModel: defaultModel, Metrics: collector}
}

// ServeHTTP implements http.Handler.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	ctx := r.Context()
	startTime := time.Now()

	chatReq, err := proxy.ParseChatCompletionRequest(r, h.DefaultModel)
	if err != nil {
		slog.WarnContext(ctx, "rejected chat completion request", "error", err)
		writeError(w, r, err)
		return
	}

	ollamaReq := proxy.ToOllamaChatRequest(chatReq)

	slog.InfoContext(ctx, "processing chat completion request",
		"model", chatReq.Model,
		"messages", len(chatReq.Messages),
		"stream", chatReq.Stream,
	)

	if chatReq.Stream {
		stream, err := h.Backend.StreamChat(ctx, ollamaReq)
		if err != nil {
			h.fail(w, r, chatReq.Model, startTime, err)
			return
		}
		relayStream(w, r, &streamRelay{
			endpoint: EndpointChat,
			model:    chatReq.Model,
			stream:   stream,
			reframer: proxy.NewChatReframer(chatReq.Model),
			metrics:  h.Metrics,
			start:    startTime,
		})
		return
	}

	resp, err := h.Backend.Chat(ctx, ollamaReq)
	if err != nil {
		h.fail(w, r, chatReq.Model, startTime, err)
		return
	}

	out, err := proxy.FormatChatCompletionResponse(resp, chatReq.Model)
	if err != nil {
		h.fail(w, r, chatReq.Model, startTime, err)
		return
	}

	elapsed := time.Since(startTime)
	h.Metrics.RecordCompletion(EndpointChat, chatReq.Model, statusSuccess, elapsed)
	h.Metrics.RecordTokens(EndpointChat, chatReq.Model, out.Usage.PromptTokens, out.Usage.CompletionTokens)

	slog.InfoContext(ctx, "chat completion successful",
		"model", chatReq.Model,
		"prompt_tokens", out.Usage.PromptTokens,
		"completion_tokens", out.Usage.CompletionTokens,
		"total_latency_ms", elapsed.Milliseconds(),
	)

	writeJSON(w, r, out)
}

func (h *ChatHandler) fail(w http.ResponseWriter, r *http.Request, model string, start time.Time, err error) {
	h.Metrics.RecordCompletion(EndpointChat, model, statusError, time.Since(start))
	slog.ErrorContext(r.Context(), "chat completion failed",
		"model", model,
		"error", err,
	)
	writeError(w, r, err)
}
