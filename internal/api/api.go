package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "http://localhost:5000"

	// DefaultTimeout bounds ordinary JSON exchanges.
	DefaultTimeout = 15 * time.Second

	// UploadTimeout bounds multipart video uploads, which carry large binary
	// payloads and need far more headroom than JSON calls.
	UploadTimeout = 60 * time.Second

	fallbackErrMsg = "request failed"
)

// TokenSource supplies the current bearer token, or empty when logged out.
type TokenSource interface {
	Token() string
}

// APIError is a structured non-2xx response from the Beatly service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// errorBody mirrors the error payload shapes the backend is known to emit.
// No field is guaranteed present.
type errorBody struct {
	Details string `json:"details"`
	Err     string `json:"error"`
	Message string `json:"message"`
}

// message resolves the error text via the fallback chain:
// details -> error -> message -> transport text -> fixed fallback.
func (b errorBody) message(transport string) string {
	switch {
	case b.Details != "":
		return b.Details
	case b.Err != "":
		return b.Err
	case b.Message != "":
		return b.Message
	case transport != "":
		return transport
	default:
		return fallbackErrMsg
	}
}

// Client makes authenticated requests to the Beatly REST service.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	tokens       TokenSource
}

// Opts contains configuration options for creating a [Client].
type Opts struct {
	BaseURL       string
	Tokens        TokenSource
	HTTPClient    *http.Client // overrides Timeout when set
	Timeout       time.Duration
	UploadTimeout time.Duration
}

// NewClient creates a Beatly API client.
func NewClient(opts Opts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UploadTimeout <= 0 {
		opts.UploadTimeout = UploadTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:      opts.BaseURL,
		httpClient:   opts.HTTPClient,
		uploadClient: &http.Client{Timeout: opts.UploadTimeout, Transport: opts.HTTPClient.Transport},
		tokens:       opts.Tokens,
	}
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// authorize attaches the bearer token when one is available. A missing token
// is not an error here; the request proceeds and the server decides.
func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// do performs a JSON request and decodes a 2xx body into result (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.send(c.httpClient, req, result)
}

// send executes req on client, mapping non-2xx responses to [*APIError].
func (c *Client) send(client *http.Client, req *http.Request, result any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		// A non-JSON error body falls through to the fixed fallback.
		_ = json.Unmarshal(raw, &eb)
		return &APIError{Status: resp.StatusCode, Message: eb.message("")}
	}

	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ErrorMessage extracts a display string for any error the client returns,
// preferring the structured [APIError] message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
