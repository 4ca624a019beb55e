package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Error is returned when the platform answers with a non-2xx status.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform returned %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("platform returned %d: %s", e.Status, e.Message)
}

// Request describes one call against the platform.
type Request struct {
	Method      string
	Path        string
	Body        []byte
	ContentType string
	Headers     map[string]string
}

// Client performs authenticated calls against the platform REST surface.
type Client struct {
	baseURL string
	key     string
	timeout time.Duration
}

// NewClient creates a client that authenticates every call with key.
func NewClient(cfg Config, key string) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse platform url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid platform url %q", cfg.URL)
	}
	if key == "" {
		return nil, errors.New("platform key is empty")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     key,
		timeout: time.Duration(timeout) * time.Second,
	}, nil
}

// BaseURL returns the endpoint without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends the request and returns the response body of a 2xx answer.
// fasthttp has no context support, so ctx is only checked before sending;
// the configured timeout bounds the call itself.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(r.Method)
	req.SetRequestURI(c.baseURL + r.Path)
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return nil, fmt.Errorf("failed to prepare %s %s: %w", r.Method, r.Path, err)
	}

	a.Timeout(c.timeout)
	a.Set("apikey", c.key)
	a.Set(fiber.HeaderAuthorization, "Bearer "+c.key)
	for k, v := range r.Headers {
		a.Set(k, v)
	}
	if r.Body != nil {
		if r.ContentType != "" {
			a.ContentType(r.ContentType)
		}
		a.Body(r.Body)
	}

	// Bytes releases the agent.
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to call %s %s: %w", r.Method, r.Path, errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		return nil, decodeError(code, body)
	}
	return body, nil
}

// DoJSON marshals in (when non-nil) as the request body and unmarshals the
// response into out (when non-nil).
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	r := Request{Method: method, Path: path}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", path, err)
		}
		r.Body = body
		r.ContentType = fiber.MIMEApplicationJSON
	}

	body, err := c.Do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// decodeError understands both the storage API ({"error","message"}) and
// PostgREST ({"code","message"}) error bodies.
func decodeError(status int, body []byte) error {
	var payload struct {
		Code    string `json:"code"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	e := &Error{Status: status}
	if err := json.Unmarshal(body, &payload); err == nil && (payload.Message != "" || payload.Error != "") {
		e.Code = payload.Code
		if e.Code == "" {
			e.Code = payload.Error
		}
		e.Message = payload.Message
		if e.Message == "" {
			e.Message = payload.Error
		}
		return e
	}
	e.Message = strings.TrimSpace(string(body))
	return e
}

// EscapePath escapes each segment of an object path, keeping the slashes.
func EscapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
