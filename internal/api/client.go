// Package api is the gateway to the remote todo service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/aitodo/internal/logging"
	"github.com/idilsaglam/aitodo/internal/model"
)

const (
	listPath   = "/api/todos/"
	manualPath = "/api/todos/manual"
	chatPath   = "/api/todos/chat"

	defaultUserAgent = "aitodo/1.0"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport. The default client has no timeout:
// calls wait for the transport to resolve.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// Client talks to the todo service rooted at BaseURL.
type Client struct {
	BaseURL   string
	http      *http.Client
	log       *log.Logger
	userAgent string
}

// New creates a client. baseURL should have no trailing slash.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		log:       logging.Discard(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponse struct {
	Todos []model.Todo `json:"todos"`
}

type createManualRequest struct {
	Text string `json:"text"`
}

type createManualResponse struct {
	Message string `json:"message"`
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// List fetches every todo. A body without "todos" yields an empty list.
func (c *Client) List(ctx context.Context) ([]model.Todo, error) {
	var out listResponse
	if err := c.do(ctx, "list todos", http.MethodGet, listPath, nil, &out); err != nil {
		return nil, err
	}
	if out.Todos == nil {
		return []model.Todo{}, nil
	}
	return out.Todos, nil
}

// CreateManual creates a todo from text as typed and returns the server's
// acknowledgement message, which may be empty.
func (c *Client) CreateManual(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	var out createManualResponse
	if err := c.do(ctx, "create todo", http.MethodPost, manualPath, createManualRequest{Text: text}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// CreateViaPrompt hands a natural-language prompt to the server-side
// assistant and returns which tool it used and what it said.
func (c *Client) CreateViaPrompt(ctx context.Context, prompt string) (model.AIResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		return model.AIResponse{}, ErrEmptyInput
	}
	var out model.AIResponse
	if err := c.do(ctx, "ai request", http.MethodPost, chatPath, chatRequest{Prompt: prompt}, &out); err != nil {
		return model.AIResponse{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "op", op, "method", method, "path", path, "request_id", reqID, "err", err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	c.log.Debug("request done", "op", op, "method", method, "path", path,
		"status", resp.StatusCode, "request_id", reqID, "elapsed", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Op: op, StatusCode: resp.StatusCode}
		var eb errorResponse
		if json.Unmarshal(raw, &eb) == nil {
			se.Message = eb.Error
		}
		return se
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
