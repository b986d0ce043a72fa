package proxy

import (
	"encoding/json"
	"fmt"
	"time"

	"ollama-bridge/pkg/ollama"
	"ollama-bridge/pkg/proxy/types"
)

// DoneFrame is the sentinel that ends every well-formed stream.
var DoneFrame = []byte("data: [DONE]\n\n")

// StreamKind selects the OpenAI chunk shape a Reframer emits.
type StreamKind int

const (
	// StreamChat emits chat.completion.chunk objects with a delta.
	StreamChat StreamKind = iota

	// StreamCompletion emits text_completion objects with text.
	StreamCompletion
)

// Reframer turns backend stream events into SSE frames for one response.
// The response ID and model are fixed for the life of the stream.
type Reframer struct {
	kind  StreamKind
	id    string
	model string
	now   func() time.Time
}

// NewChatReframer creates a Reframer for /v1/chat/completions.
func NewChatReframer(model string) *Reframer {
	return &Reframer{kind: StreamChat, id: NewResponseID(ChatIDPrefix), model: model, now: time.Now}
}

// NewCompletionReframer creates a Reframer for /v1/completions.
func NewCompletionReframer(model string) *Reframer {
	return &Reframer{kind: StreamCompletion, id: NewResponseID(CompletionIDPrefix), model: model, now: time.Now}
}

// ID returns the response ID shared by every chunk.
func (r *Reframer) ID() string {
	return r.id
}

// Frames maps one event to the frames to write, in order. done reports that
// the terminal frames were included and the stream is over.
//
//   - Skip: no frames
//   - Content: one chunk with finish_reason null
//   - Done: a content chunk if the line carried text, then for chat a
//     finish_reason "stop" chunk with an empty delta, then [DONE]
func (r *Reframer) Frames(ev ollama.Event) (frames [][]byte, done bool, err error) {
	switch ev.Kind {
	case ollama.EventContent:
		frame, err := r.contentFrame(ev.Content)
		if err != nil {
			return nil, false, err
		}
		return [][]byte{frame}, false, nil

	case ollama.EventDone:
		if ev.Content != "" {
			frame, err := r.contentFrame(ev.Content)
			if err != nil {
				return nil, false, err
			}
			frames = append(frames, frame)
		}
		if r.kind == StreamChat {
			stop := types.FinishReasonStop
			frame, err := encodeFrame(r.chatChunk(types.Delta{}, &stop))
			if err != nil {
				return nil, false, err
			}
			frames = append(frames, frame)
		}
		return append(frames, DoneFrame), true, nil

	default:
		return nil, false, nil
	}
}

func (r *Reframer) contentFrame(content string) ([]byte, error) {
	if r.kind == StreamChat {
		return encodeFrame(r.chatChunk(types.Delta{Content: content}, nil))
	}
	return encodeFrame(&types.CompletionStreamChunk{
		ID:      r.id,
		Object:  types.ObjectTextCompletion,
		Created: r.now().Unix(),
		Model:   r.model,
		Choices: []types.CompletionStreamChoice{
			{Text: content, Index: 0, FinishReason: nil},
		},
	})
}

func (r *Reframer) chatChunk(delta types.Delta, finishReason *string) *types.ChatCompletionStreamChunk {
	return &types.ChatCompletionStreamChunk{
		ID:      r.id,
		Object:  types.ObjectChatCompletionChunk,
		Created: r.now().Unix(),
		Model:   r.model,
		Choices: []types.StreamChoice{
			{Index: 0, Delta: delta, FinishReason: finishReason},
		},
	}
}

// encodeFrame marshals v as a "data: <json>\n\n" frame.
func encodeFrame(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal SSE chunk: %w", err)
	}

	frame := make([]byte, 0, len(data)+8)
	frame = append(frame, "data: "...)
	frame = append(frame, data...)
	frame = append(frame, "\n\n"...)
	return frame, nil
}
