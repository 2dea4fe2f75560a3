// Package rest binds the medadmin service interfaces to the real HTTP API.
//
// The backend speaks one dialect everywhere: every endpoint, including
// semantically read-only ones, is an HTTP POST with a JSON body, and every
// response is the envelope {status, message, data}. That convention is
// preserved here for compatibility. All success/failure classification
// happens in this package; callers only ever see *medadmin.APIError or one
// of the sentinel errors.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	medadmin "github.com/carebase/medadmin-go"
	"github.com/carebase/medadmin-go/metrics"
)

// Config holds the connection configuration for the REST binding.
type Config struct {
	// APIRoot is the primary backend's API root, e.g. "https://api.example.com/api".
	APIRoot string

	// AdminAPIRoot is the API root of the secondary (legacy admin) identity
	// source. Defaults to APIRoot.
	AdminAPIRoot string

	// Timeout bounds every request. Default: 15 seconds.
	Timeout time.Duration
}

// Client is the single point of contact with the backend. It holds the
// bearer token pushed by the session store and attaches it to every request.
type Client struct {
	httpclient *http.Client
	api        string
	adminAPI   string
	logger     *slog.Logger
	metrics    *metrics.Metrics

	mu    sync.RWMutex
	token string
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpclient = hc }
}

// WithMetrics records request outcomes on the given metrics instance.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a REST client for the given configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.AdminAPIRoot == "" {
		cfg.AdminAPIRoot = cfg.APIRoot
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = medadmin.DefaultTimeout
	}

	c := &Client{
		httpclient: &http.Client{Timeout: cfg.Timeout},
		api:        strings.TrimSuffix(cfg.APIRoot, "/"),
		adminAPI:   strings.TrimSuffix(cfg.AdminAPIRoot, "/"),
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetToken stores the bearer token attached to subsequent requests.
// The session store calls this after login and session restore.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken drops the bearer token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the currently held bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// envelope is the uniform response wrapper. The backend sometimes signals
// failure inside a 200 response; env.Status is authoritative, not the HTTP
// status line.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func (e *envelope) ok() bool {
	return e.Status == http.StatusOK || e.Status == http.StatusCreated
}

func (e *envelope) errorMessage() string {
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

func (e *envelope) hasData() bool {
	trimmed := strings.TrimSpace(string(e.Data))
	return trimmed != "" && trimmed != "null" && trimmed != "0" && trimmed != "false"
}

// post issues one backend call and settles it into either decoded data or
// an error, exactly once. When requireData is true, a success envelope
// without a usable data payload is treated as malformed.
func (c *Client) post(ctx context.Context, root, path string, body, out any, requireData bool) error {
	if body == nil {
		body = struct{}{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := root + "/" + strings.TrimPrefix(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		c.record(path, "unreachable")
		c.logger.Warn("backend unreachable", "path", path, "error", err)
		return medadmin.ErrUnreachable
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(path, "error")
		return medadmin.ErrUnexpectedFormat
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.record(path, "error")
		c.logger.Warn("unparseable response body", "path", path, "status", resp.StatusCode)
		return medadmin.ErrUnexpectedFormat
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.record(path, "error")
		status := env.Status
		if status == 0 {
			status = resp.StatusCode
		}
		return &medadmin.APIError{Status: status, Message: env.errorMessage()}
	}

	// Soft failure: successful HTTP status, error-coded envelope.
	if !env.ok() {
		c.record(path, "error")
		return &medadmin.APIError{Status: env.Status, Message: env.errorMessage()}
	}

	if !env.hasData() {
		if requireData {
			c.record(path, "error")
			return medadmin.ErrUnexpectedFormat
		}
		c.record(path, "ok")
		return nil
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.record(path, "error")
			return medadmin.ErrUnexpectedFormat
		}
	}
	c.record(path, "ok")
	return nil
}

func (c *Client) record(path, result string) {
	if c.metrics != nil {
		c.metrics.RecordAPIRequest(path, result)
	}
}

// listData is the backend's pagination shape for list endpoints.
type listData[T any] struct {
	Docs       []T `json:"docs"`
	TotalDocs  int `json:"totalDocs"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Limit      int `json:"limit"`
}

func listOf[T any](ctx context.Context, c *Client, root, path string, opts medadmin.ListOptions) (medadmin.Page[T], error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}
	var data listData[T]
	if err := c.post(ctx, root, path, opts, &data, true); err != nil {
		return medadmin.Page[T]{}, err
	}
	totalPages := data.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	return medadmin.Page[T]{
		Items:      data.Docs,
		Page:       data.Page,
		TotalPages: totalPages,
		TotalItems: data.TotalDocs,
		PageSize:   data.Limit,
	}, nil
}

type idPayload struct {
	ID string `json:"id"`
}

type updatePayload struct {
	ID   string `json:"id"`
	Data any    `json:"data"`
}

type statusPayload struct {
	ID       string `json:"id"`
	IsActive bool   `json:"isActive"`
}

func getOf[T any](ctx context.Context, c *Client, root, path, id string) (*T, error) {
	var out T
	if err := c.post(ctx, root, path, idPayload{ID: id}, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func createOf[T any](ctx context.Context, c *Client, root, path string, params any) (*T, error) {
	var out T
	if err := c.post(ctx, root, path, params, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func updateOf[T any](ctx context.Context, c *Client, root, path, id string, params any) (*T, error) {
	var out T
	if err := c.post(ctx, root, path, updatePayload{ID: id, Data: params}, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) deleteByID(ctx context.Context, root, path, id string) error {
	return c.post(ctx, root, path, idPayload{ID: id}, nil, false)
}

func (c *Client) setActive(ctx context.Context, root, path, id string, active bool) error {
	return c.post(ctx, root, path, statusPayload{ID: id, IsActive: active}, nil, false)
}

func (c *Client) statsOf(ctx context.Context, root, path string) (medadmin.Stats, error) {
	var out medadmin.Stats
	if err := c.post(ctx, root, path, nil, &out, true); err != nil {
		return medadmin.Stats{}, err
	}
	return out, nil
}
