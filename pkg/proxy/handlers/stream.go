package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ollama-bridge/pkg/ollama"
	"ollama-bridge/pkg/proxy"
	"ollama-bridge/pkg/telemetry/metrics"
)

// streamRelay carries one SSE response from an open backend stream.
type streamRelay struct {
	endpoint string
	model    string
	stream   *ollama.Stream
	reframer *proxy.Reframer
	metrics  *metrics.Collector
	start    time.Time
}

// relayStream copies backend events to the client as SSE frames until the
// backend sends done, closes the stream, fails, or the client goes away.
// The backend stream is always closed on return.
//
// A backend failure after the status line has been sent is reported as a
// single {"error": ...} frame with no [DONE] after it. A backend that closes
// without a done line gets no terminal frames at all.
func relayStream(w http.ResponseWriter, r *http.Request, relay *streamRelay) {
	ctx := r.Context()
	stream := relay.stream
	defer stream.Close()

	proxy.SetSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	framesSent := 0
	outcome := metrics.OutcomeTruncated
	defer func() {
		relay.metrics.RecordStreamOutcome(relay.endpoint, outcome)
		status := statusSuccess
		if outcome != metrics.OutcomeCompleted {
			status = statusError
		}
		relay.metrics.RecordCompletion(relay.endpoint, relay.model, status, time.Since(relay.start))

		slog.InfoContext(ctx, "stream finished",
			"endpoint", relay.endpoint,
			"model", relay.model,
			"id", relay.reframer.ID(),
			"outcome", outcome,
			"frames_sent", framesSent,
			"backend_lines", stream.Lines(),
			"total_latency_ms", time.Since(relay.start).Milliseconds(),
		)
	}()

	for {
		ev, err := stream.Next(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				slog.WarnContext(ctx, "backend closed stream without done", "endpoint", relay.endpoint)
			case ctx.Err() != nil:
				outcome = metrics.OutcomeClientGone
				slog.WarnContext(ctx, "client disconnected during streaming",
					"endpoint", relay.endpoint,
					"frames_sent", framesSent,
				)
			default:
				outcome = metrics.OutcomeError
				if errors.Is(err, ollama.ErrIdleTimeout) {
					outcome = metrics.OutcomeIdleTimeout
				}
				slog.ErrorContext(ctx, "backend stream failed", "endpoint", relay.endpoint, "error", err)
				if werr := proxy.WriteSSEError(w, proxy.StreamErrorResponse(err)); werr != nil {
					slog.DebugContext(ctx, "failed to write SSE error", "error", werr)
				}
			}
			return
		}

		relay.metrics.RecordStreamEvent(relay.endpoint, eventLabel(ev))

		frames, done, err := relay.reframer.Frames(ev)
		if err != nil {
			outcome = metrics.OutcomeError
			slog.ErrorContext(ctx, "failed to encode stream chunk", "error", err)
			_ = proxy.WriteSSEError(w, proxy.StreamErrorResponse(err))
			return
		}

		for _, frame := range frames {
			if err := proxy.WriteSSEFrame(w, frame); err != nil {
				outcome = metrics.OutcomeClientGone
				slog.WarnContext(ctx, "failed to write SSE frame", "error", err)
				return
			}
			if framesSent == 0 {
				relay.metrics.RecordFirstToken(relay.endpoint, time.Since(relay.start))
			}
			framesSent++
		}

		if done {
			outcome = metrics.OutcomeCompleted
			if ev.Chunk != nil {
				relay.metrics.RecordTokens(relay.endpoint, relay.model, ev.Chunk.PromptEvalCount, ev.Chunk.EvalCount)
			}
			return
		}
	}
}

// eventLabel names an event for the stream_events_total metric.
func eventLabel(ev ollama.Event) string {
	if errors.Is(ev.Err, ollama.ErrMalformedLine) {
		return "malformed"
	}
	return ev.Kind.String()
}
