// Package convex implements the HTTP client for the managed backend's
// function API and the per-entity adapters that translate core ports into
// remote function calls.
//
// Every call is a POST to /api/query or /api/mutation with a JSON body of
// the form {"path": "<module>:<fn>", "args": {...}, "format": "json"}. The
// response is an envelope carrying either a value or a thrown error message.
package convex

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venity/venity-gateway/internal/api/metrics"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to reach a backend deployment.
type Config struct {
	// URL is the deployment base URL, e.g. https://happy-otter-123.convex.cloud.
	URL string
	// Timeout bounds a single function call end-to-end.
	Timeout time.Duration
}

// ServerError is an error thrown by a backend function (as opposed to a
// transport failure). The message is whatever the function threw.
type ServerError struct {
	Message string
	Data    json.RawMessage
}

func (e *ServerError) Error() string { return e.Message }

// Client invokes backend functions over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewClient returns a Client for the given deployment.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.URL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

type callRequest struct {
	Path   string         `json:"path"`
	Args   map[string]any `json:"args"`
	Format string         `json:"format"`
}

type callResponse struct {
	Status       string          `json:"status"`
	Value        json.RawMessage `json:"value"`
	ErrorMessage string          `json:"errorMessage"`
	ErrorData    json.RawMessage `json:"errorData"`
}

// Query invokes a read-only function and decodes its value into out.
// Pass a nil out to discard the value.
func (c *Client) Query(ctx context.Context, path string, args map[string]any, out any) error {
	return c.call(ctx, "query", path, args, out)
}

// Mutation invokes a write function and decodes its value into out.
func (c *Client) Mutation(ctx context.Context, path string, args map[string]any, out any) error {
	return c.call(ctx, "mutation", path, args, out)
}

func (c *Client) call(ctx context.Context, kind, path string, args map[string]any, out any) error {
	if args == nil {
		args = map[string]any{}
	}

	body, err := json.Marshal(callRequest{Path: path, Args: args, Format: "json"})
	if err != nil {
		return fmt.Errorf("convex %s %s: encode args: %w", kind, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+kind, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("convex %s %s: %w", kind, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.BackendCallsTotal.WithLabelValues(path, "transport").Inc()
		return fmt.Errorf("convex %s %s: %w", kind, path, err)
	}
	defer resp.Body.Close()
	metrics.BackendCallDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	var env callResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.BackendCallsTotal.WithLabelValues(path, "transport").Inc()
		return fmt.Errorf("convex %s %s: decode response: %w", kind, path, err)
	}

	if env.Status != "success" {
		metrics.BackendCallsTotal.WithLabelValues(path, "error").Inc()
		c.log.Debug().
			Str("request_id", reqID).
			Str("function", path).
			Str("message", env.ErrorMessage).
			Msg("backend function threw")
		return &ServerError{Message: env.ErrorMessage, Data: env.ErrorData}
	}

	metrics.BackendCallsTotal.WithLabelValues(path, "ok").Inc()
	if out != nil && len(env.Value) > 0 {
		if err := json.Unmarshal(env.Value, out); err != nil {
			return fmt.Errorf("convex %s %s: decode value: %w", kind, path, err)
		}
	}
	return nil
}

// Ping verifies the deployment is reachable. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/version", nil)
	if err != nil {
		return fmt.Errorf("convex ping: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("convex ping: %w", err)
	}
	resp.Body.Close()
	return nil
}
