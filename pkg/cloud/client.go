// Package cloud is the Browser Use Cloud API v2 client used by every tool
// in this server. It owns exactly three concerns: injecting the API key
// header, shaping requests (camelCase JSON bodies, query strings with empty
// values dropped), and normalizing responses into Result values. Everything
// else — browser execution, task scheduling, retries — happens upstream.
package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/entrhq/browsercloud/pkg/logging"
)

const (
	// DefaultBaseURL is the public Browser Use Cloud endpoint.
	DefaultBaseURL = "https://api.browser-use.com"

	// AuthHeader carries the API key on every request.
	AuthHeader = "X-Browser-Use-API-Key"

	// DefaultTimeout bounds a single upstream round trip. Polling tools
	// issue many short requests, so this stays well under their deadlines.
	DefaultTimeout = 60 * time.Second
)

// ErrMissingAPIKey is returned when a client is constructed without a key.
// The server cannot authenticate upstream requests without one, so this is
// surfaced at startup rather than on first tool call.
var ErrMissingAPIKey = errors.New("browser use API key is required (set BROWSER_USE_API_KEY)")

// Doer is the single upstream operation tools depend on. Tests substitute
// a fake; production code uses *Client.
type Doer interface {
	Do(ctx context.Context, method, path string, body any, query url.Values) *Result
}

// Client dispatches requests to the Browser Use Cloud API.
type Client struct {
	http *resty.Client
	log  *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the upstream endpoint, for self-hosted deployments
// and tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// NewClient creates a Browser Use Cloud client. The API key is mandatory.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	log, _ := logging.NewLogger("cloud")

	client := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(DefaultTimeout).
			SetHeader(AuthHeader, apiKey).
			SetHeader("Content-Type", "application/json"),
		log: log,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Do performs one upstream round trip. The outcome is always a Result;
// transport errors and non-2xx statuses become Success=false rather than
// Go errors so tools can pass them through to the calling agent unchanged.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) *Result {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(compactQuery(query))
	}

	res, err := req.Execute(method, path)
	if err != nil {
		c.log.Errorf("%s %s failed: %v", method, path, err)
		return &Result{Success: false, Error: err.Error()}
	}

	if !res.IsSuccess() {
		message := upstreamError(res.Body())
		if message == "" {
			message = fmt.Sprintf("upstream returned %s", res.Status())
		}
		c.log.Warnf("%s %s -> %d: %s", method, path, res.StatusCode(), message)
		return &Result{Success: false, StatusCode: res.StatusCode(), Error: message}
	}

	return &Result{Success: true, StatusCode: res.StatusCode(), Data: decodeBody(res.Body())}
}

// compactQuery drops parameters whose every value is empty so optional
// filters never reach the wire.
func compactQuery(query url.Values) url.Values {
	clean := url.Values{}
	for key, values := range query {
		for _, value := range values {
			if value != "" {
				clean.Add(key, value)
			}
		}
	}
	return clean
}

// decodeBody parses a JSON response body. Non-JSON and empty bodies are
// passed through as-is.
func decodeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}
	return data
}

// upstreamError pulls a human-readable message out of an error body. The
// API uses "detail" for validation errors; "message" and "error" cover
// other gateways in front of it.
func upstreamError(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "message", "error"} {
		if value, ok := payload[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
