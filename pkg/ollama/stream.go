package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// maxLineSize is the longest NDJSON line accepted from the backend.
const maxLineSize = 1 << 20

// EventKind tags what a streamed line meant.
type EventKind int

const (
	// EventSkip is a line that produces no output: blank, malformed, or
	// carrying no content.
	EventSkip EventKind = iota

	// EventContent is a line with non-empty content.
	EventContent

	// EventDone is the terminating line. It may still carry content.
	EventDone
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case EventSkip:
		return "skip"
	case EventContent:
		return "content"
	case EventDone:
		return "done"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one decoded line of a streamed reply.
type Event struct {
	Kind EventKind

	// Content is the text carried by the line: message.content for chat,
	// response for generate.
	Content string

	// Chunk is the decoded line, nil for blank or malformed lines.
	Chunk *Chunk

	// Err is ErrMalformedLine for Skip events produced by invalid JSON.
	Err error
}

type contentFunc func(*Chunk) string

func chatContent(c *Chunk) string {
	if c.Message == nil {
		return ""
	}
	return c.Message.Content
}

func generateContent(c *Chunk) string {
	return c.Response
}

type lineResult struct {
	line []byte
	err  error
}

// Stream is a single-pass producer of Events over a streamed backend reply.
// Next must not be called concurrently.
type Stream struct {
	op      string
	body    io.ReadCloser
	cancel  context.CancelFunc
	idle    time.Duration
	extract contentFunc
	logger  *slog.Logger

	lines     chan lineResult
	stop      chan struct{}
	closeOnce sync.Once

	lineCount int
	finished  bool
}

func newStream(body io.ReadCloser, cancel context.CancelFunc, op string, idle time.Duration, extract contentFunc, logger *slog.Logger) *Stream {
	s := &Stream{
		op:      op,
		body:    body,
		cancel:  cancel,
		idle:    idle,
		extract: extract,
		logger:  logger,
		lines:   make(chan lineResult),
		stop:    make(chan struct{}),
	}
	go s.readLines()
	return s
}

// readLines feeds backend lines to Next until EOF, a read error, or Close.
func (s *Stream) readLines() {
	defer close(s.lines)

	scanner := bufio.NewScanner(s.body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		select {
		case s.lines <- lineResult{line: line}:
		case <-s.stop:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		select {
		case s.lines <- lineResult{err: err}:
		case <-s.stop:
		}
	}
}

// Next blocks until the next line arrives and returns its Event. It returns
// io.EOF after a Done event or when the backend closes the stream without
// one. A gap longer than the idle timeout, a read failure, or an error line
// from the backend yields a *StreamError. Cancelling ctx returns ctx.Err().
// Every non-nil error leaves the stream closed.
func (s *Stream) Next(ctx context.Context) (Event, error) {
	if s.finished {
		return Event{}, io.EOF
	}

	timer := time.NewTimer(s.idle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.finish()
		return Event{}, ctx.Err()

	case <-timer.C:
		s.finish()
		return Event{}, &StreamError{
			Op:    s.op,
			Lines: s.lineCount,
			Cause: fmt.Errorf("%w: no data for %s", ErrIdleTimeout, s.idle),
		}

	case res, ok := <-s.lines:
		if !ok {
			s.finish()
			return Event{}, io.EOF
		}
		if res.err != nil {
			s.finish()
			return Event{}, &StreamError{Op: s.op, Lines: s.lineCount, Cause: res.err}
		}
		s.lineCount++
		return s.decode(res.line)
	}
}

// Lines returns the number of lines read so far.
func (s *Stream) Lines() int {
	return s.lineCount
}

// Close aborts the backend request and releases its connection. It is safe
// to call more than once.
func (s *Stream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stop)
		s.cancel()
		err = s.body.Close()
	})
	return err
}

func (s *Stream) finish() {
	s.finished = true
	_ = s.Close()
}

func (s *Stream) decode(line []byte) (Event, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return Event{Kind: EventSkip}, nil
	}

	var chunk Chunk
	if err := json.Unmarshal(line, &chunk); err != nil {
		s.logger.Debug("skipping malformed stream line",
			"op", s.op,
			"line", truncate(string(line), 100),
			"error", err,
		)
		return Event{Kind: EventSkip, Err: ErrMalformedLine}, nil
	}

	if chunk.Error != "" {
		s.finish()
		return Event{}, &StreamError{
			Op:    s.op,
			Lines: s.lineCount,
			Cause: &ProtocolError{Op: s.op, Message: chunk.Error},
		}
	}

	content := s.extract(&chunk)

	if chunk.Done {
		s.finish()
		return Event{Kind: EventDone, Content: content, Chunk: &chunk}, nil
	}
	if content == "" {
		return Event{Kind: EventSkip, Chunk: &chunk}, nil
	}
	return Event{Kind: EventContent, Content: content, Chunk: &chunk}, nil
}
