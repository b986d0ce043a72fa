package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// API endpoints.
const (
	PathChat     = "/api/chat"
	PathGenerate = "/api/generate"
	PathTags     = "/api/tags"
)

// maxErrorBody caps how much of a failed reply is read for the error message.
const maxErrorBody = 64 * 1024

// Timeouts applied when ClientConfig leaves them zero.
const (
	defaultRequestTimeout    = 300 * time.Second
	defaultHealthTimeout     = 5 * time.Second
	defaultStreamIdleTimeout = 90 * time.Second
)

// ClientConfig configures a Client.
type ClientConfig struct {
	// BaseURL is the Ollama server, e.g. http://localhost:11434.
	BaseURL string

	// RequestTimeout bounds non-streaming chat and generate calls.
	RequestTimeout time.Duration

	// HealthTimeout bounds Ping and Tags.
	HealthTimeout time.Duration

	// StreamIdleTimeout bounds the wait for response headers and for each
	// line of a streamed reply.
	StreamIdleTimeout time.Duration

	// Connection pool settings
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client talks to one Ollama server. It is safe for concurrent use and keeps
// no per-request state.
type Client struct {
	config ClientConfig
	client *http.Client
	logger *slog.Logger

	closeOnce sync.Once
}

// NewClient creates a Client with a pooled transport. The http.Client has no
// overall timeout; each call applies its own deadline.
func NewClient(cfg ClientConfig) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = defaultHealthTimeout
	}
	if cfg.StreamIdleTimeout <= 0 {
		cfg.StreamIdleTimeout = defaultStreamIdleTimeout
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		config: cfg,
		client: &http.Client{Transport: transport},
		logger: logger,
	}
}

// BaseURL returns the configured backend URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Chat performs a non-streaming /api/chat call. The reply is returned as
// decoded; a missing message is left for the caller to reject.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, PathChat, req, &resp, c.config.RequestTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Generate performs a non-streaming /api/generate call.
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	var resp GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, PathGenerate, req, &resp, c.config.RequestTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Tags lists the models available on the backend. A reply without a
// "models" key yields an empty list.
func (c *Client) Tags(ctx context.Context) (*TagsResponse, error) {
	var resp TagsResponse
	if err := c.doJSON(ctx, http.MethodGet, PathTags, nil, &resp, c.config.HealthTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping checks that the backend answers GET /api/tags with 200 within the
// health timeout. The body is not inspected.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.HealthTimeout)
	defer cancel()

	resp, err := c.send(ctx, http.MethodGet, PathTags, nil, c.config.HealthTimeout)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	return nil
}

// StreamChat starts a streaming /api/chat call. The caller must Close the
// returned Stream. Cancelling ctx aborts the backend read.
func (c *Client) StreamChat(ctx context.Context, req *ChatRequest) (*Stream, error) {
	return c.openStream(ctx, PathChat, req, chatContent)
}

// StreamGenerate starts a streaming /api/generate call. The caller must
// Close the returned Stream.
func (c *Client) StreamGenerate(ctx context.Context, req *GenerateRequest) (*Stream, error) {
	return c.openStream(ctx, PathGenerate, req, generateContent)
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.client.CloseIdleConnections()
	})
	return nil
}

func (c *Client) openStream(ctx context.Context, op string, reqBody interface{}, extract contentFunc) (*Stream, error) {
	ctx, cancel := context.WithCancel(ctx)

	// No headers within the idle window aborts the call the same way a
	// silent stream does.
	headerTimer := time.AfterFunc(c.config.StreamIdleTimeout, cancel)

	resp, err := c.send(ctx, http.MethodPost, op, reqBody, c.config.StreamIdleTimeout)
	timedOut := !headerTimer.Stop()
	if err == nil && timedOut {
		// Headers arrived after the timer had already cancelled ctx.
		_ = resp.Body.Close()
		err = &UnreachableError{Op: op, Cause: fmt.Errorf("no response headers within %s", c.config.StreamIdleTimeout)}
	}
	if err != nil {
		cancel()
		var ue *UnreachableError
		if timedOut && errors.As(err, &ue) {
			ue.Timeout = c.config.StreamIdleTimeout
		}
		return nil, err
	}

	return newStream(resp.Body, cancel, op, c.config.StreamIdleTimeout, extract, c.logger), nil
}

// doJSON performs a request bounded by timeout and decodes a 200 reply into out.
func (c *Client) doJSON(ctx context.Context, method, op string, reqBody, out interface{}, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.send(ctx, method, op, reqBody, timeout)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportError(ctx, op, timeout, fmt.Errorf("failed to read response: %w", err))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ProtocolError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("invalid JSON response: %s", truncate(string(body), 200)),
			Cause:      err,
		}
	}
	return nil
}

// send issues the request and returns the response only for status 200.
// Any other status is drained and turned into a ProtocolError.
func (c *Client) send(ctx context.Context, method, op string, reqBody interface{}, timeout time.Duration) (*http.Response, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	url := c.config.BaseURL + op
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.DebugContext(ctx, "sending request to ollama",
		"method", method,
		"url", url,
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, op, timeout, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &ProtocolError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(errBody),
		}
	}

	return resp, nil
}

func (c *Client) transportError(ctx context.Context, op string, timeout time.Duration, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &UnreachableError{Op: op, Timeout: timeout, Cause: err}
	}
	return &UnreachableError{Op: op, Cause: err}
}

// errorMessage extracts Ollama's {"error": "..."} text, falling back to the raw body.
func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
		return eb.Error
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "empty response body"
	}
	return truncate(msg, 200)
}

// truncate shortens s to max bytes for log and error output.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
