// internal/gateway/gateway.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"petbloom/internal/pkg/credential"
	"petbloom/internal/pkg/nav"

	"go.uber.org/zap"
)

// Client is the single point of outbound HTTP communication with the
// backend. Every call site goes through Send so credential attachment and
// unauthorized handling stay uniform.
type Client struct {
	baseURL   string
	hc        *http.Client
	logger    *zap.Logger
	creds     credential.Store
	navigator nav.Navigator
	loginPath string

	mu             sync.RWMutex
	headers        http.Header
	reqHooks       []RequestHook
	respHooks      []ResponseHook
	onUnauthorized []func()
}

// Config carries the gateway's immutable base settings.
type Config struct {
	BaseURL        string
	DefaultHeaders http.Header
	Timeout        time.Duration
}

type Option func(*Client)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithCredentialStore attaches the durable credential slot the bearer
// hook falls back to when no session is active in-process.
func WithCredentialStore(store credential.Store) Option {
	return func(c *Client) { c.creds = store }
}

func WithNavigator(navigator nav.Navigator) Option {
	return func(c *Client) { c.navigator = navigator }
}

// New constructs the gateway. The builtin bearer and unauthorized hooks
// are installed first so user hooks observe their effects.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		hc:        &http.Client{Timeout: timeout},
		logger:    zap.NewNop(),
		navigator: nav.Noop,
		loginPath: nav.LoginPath,
		headers:   http.Header{},
	}
	c.headers.Set("Content-Type", "application/json")
	for k, vs := range cfg.DefaultHeaders {
		for _, v := range vs {
			c.headers.Set(k, v)
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	c.reqHooks = append(c.reqHooks, c.bearerHook)
	c.respHooks = append(c.respHooks, c.unauthorizedHook)
	return c
}

// BaseURL returns the resolved endpoint root.
func (c *Client) BaseURL() string { return c.baseURL }

// SetAuthorization mirrors the current identity's credential into the
// gateway's default headers.
func (c *Client) SetAuthorization(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Set("Authorization", token)
}

// ClearAuthorization removes the mirrored credential.
func (c *Client) ClearAuthorization() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Del("Authorization")
}

// Authorization returns the mirrored credential, empty when anonymous.
func (c *Client) Authorization() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.headers.Get("Authorization")
}

// Send issues one HTTP request against the configured base endpoint.
// body is JSON-encoded when non-nil; a 2xx response is decoded into out
// when out is non-nil. Failures are classified per the error taxonomy
// and never retried here.
func (c *Client) Send(ctx context.Context, method, path string, body, out any, extra ...http.Header) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: "encode request", Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}

	c.mu.RLock()
	for k, vs := range c.headers {
		if k == "Authorization" {
			continue // the bearer hook owns this header
		}
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	reqHooks := make([]RequestHook, len(c.reqHooks))
	copy(reqHooks, c.reqHooks)
	respHooks := make([]ResponseHook, len(c.respHooks))
	copy(respHooks, c.respHooks)
	c.mu.RUnlock()

	for _, h := range extra {
		for k, vs := range h {
			for _, v := range vs {
				req.Header.Set(k, v)
			}
		}
	}

	for _, hook := range reqHooks {
		if err := hook(req); err != nil {
			return &TransportError{Op: "request hook", Err: err}
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read response", Err: err}
	}

	for _, hook := range respHooks {
		if err := hook(resp, respBody); err != nil {
			return &TransportError{Op: "response hook", Err: err}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &TransportError{Op: "decode response", Err: err}
		}
	}
	return nil
}

// Get is shorthand for Send with no request body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Send(ctx, http.MethodGet, path, nil, out)
}

// Post is shorthand for a JSON POST.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, http.MethodPost, path, body, out)
}

// Put is shorthand for a JSON PUT.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Send(ctx, http.MethodPut, path, body, out)
}

// Delete is shorthand for Send with no request body.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Send(ctx, http.MethodDelete, path, nil, out)
}
