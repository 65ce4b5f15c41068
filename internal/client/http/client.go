package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/logger"
)

// DefaultTimeout bounds every outbound call unless overridden
const DefaultTimeout = 30 * time.Second

// RequestOption represents a function that can modify an HTTP request
type RequestOption func(*http.Request)

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPError represents a non-success response from an upstream
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.URL, e.StatusCode, truncate(e.Body, 256))
}

// HTTPClient is the outbound client used for code-hosting calls
type HTTPClient struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retryConfig    *RetryConfig
	middlewares    []Middleware
}

// RetryConfig configures the retry behavior. A nil config or MaxRetries of 0
// means a single attempt.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig returns the backoff shape used when retries are enabled
func DefaultRetryConfig(maxRetries int) *RetryConfig {
	return &RetryConfig{
		MaxRetries:           maxRetries,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          5 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       DefaultTimeout,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// NewHTTPClient creates a new HTTPClient with the given options
func NewHTTPClient(options ...ClientOption) *HTTPClient {
	client := &HTTPClient{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		defaultHeaders: map[string]string{
			"Accept": "application/json",
		},
	}

	for _, option := range options {
		option(client)
	}

	if len(client.middlewares) > 0 {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// first middleware ends up outermost
		for i := len(client.middlewares) - 1; i >= 0; i-- {
			transport = client.middlewares[i](transport)
		}
		client.httpClient.Transport = transport
	}

	return client
}

// WithBaseURL sets the base URL for all requests
func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = baseURL
	}
}

// WithDefaultHeader adds a default header to all requests
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

// WithTimeout sets the timeout for all requests
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithRetryConfig sets the retry configuration
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) {
		c.retryConfig = config
	}
}

// WithMiddleware adds a middleware to the client
func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

// WithBearerToken adds bearer token authentication to the request.
// An empty token leaves the request unauthenticated.
func WithBearerToken(token string) RequestOption {
	return func(req *http.Request) {
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// GetJSON performs a GET and decodes a success body into target
func (c *HTTPClient) GetJSON(ctx context.Context, path string, target interface{}, options ...RequestOption) error {
	resp, err := c.Get(ctx, path, options...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// Get performs an HTTP GET. Non-success responses come back as *HTTPError
// alongside the response, whose body has already been drained into the error.
func (c *HTTPClient) Get(ctx context.Context, path string, options ...RequestOption) (*http.Response, error) {
	start := time.Now()

	fullURL, err := c.resolveURL(path)
	if err != nil {
		return nil, err
	}

	newRequest := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		for key, value := range c.defaultHeaders {
			req.Header.Set(key, value)
		}
		for _, option := range options {
			option(req)
		}
		return req, nil
	}

	// Fail fast on malformed requests before any retry machinery kicks in
	if _, err := newRequest(); err != nil {
		return nil, err
	}

	resp, err := c.send(ctx, newRequest)
	duration := time.Since(start)

	if err != nil {
		logger.Error("HTTP request failed",
			zap.String("url", fullURL),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		logger.Warn("HTTP error response",
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", duration))

		return resp, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Method:     http.MethodGet,
			Body:       string(bodyBytes),
		}
	}

	logger.Debug("HTTP request successful",
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

// send runs one attempt, or several under exponential backoff when retries are
// configured. A status that is still retryable once retries run out is returned
// as a response so the caller reports it as an HTTPError.
func (c *HTTPClient) send(ctx context.Context, newRequest func() (*http.Request, error)) (*http.Response, error) {
	if c.retryConfig == nil || c.retryConfig.MaxRetries <= 0 {
		req, err := newRequest()
		if err != nil {
			return nil, err
		}
		return c.httpClient.Do(req)
	}

	var resp *http.Response
	var lastStatus *http.Response
	operation := func() error {
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(err)
		}
		// nolint:bodyclose // closed below on retryable statuses, otherwise by the caller
		r, err := c.httpClient.Do(req)
		if err != nil {
			lastStatus = nil
			return err
		}
		if c.isRetryable(r.StatusCode) {
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
			r.Body = io.NopCloser(strings.NewReader(""))
			lastStatus = r
			return fmt.Errorf("retryable status code: %d", r.StatusCode)
		}
		resp = r
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryConfig.InitialInterval
	expBackoff.MaxInterval = c.retryConfig.MaxInterval
	expBackoff.Multiplier = c.retryConfig.Multiplier
	expBackoff.MaxElapsedTime = c.retryConfig.MaxElapsedTime

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(c.retryConfig.MaxRetries)), ctx))
	if err == nil {
		return resp, nil
	}
	if lastStatus != nil && ctx.Err() == nil {
		return lastStatus, nil
	}
	return nil, err
}

func (c *HTTPClient) resolveURL(path string) (string, error) {
	if c.baseURL == "" {
		if _, err := url.ParseRequestURI(path); err != nil {
			return "", fmt.Errorf("invalid path used without base URL: %s, error: %w", path, err)
		}
		return path, nil
	}

	trimmedPath := path
	if !strings.HasPrefix(trimmedPath, "/") {
		trimmedPath = "/" + trimmedPath
	}
	return strings.TrimSuffix(c.baseURL, "/") + trimmedPath, nil
}

func (c *HTTPClient) isRetryable(status int) bool {
	if c.retryConfig == nil {
		return false
	}
	for _, code := range c.retryConfig.RetryableStatusCodes {
		if status == code {
			return true
		}
	}
	return false
}

// LoggingMiddleware creates a middleware that logs requests and responses at debug.
// Authorization headers are never logged.
func LoggingMiddleware() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Bool("authenticated", req.Header.Get("Authorization") != ""))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		logger.Debug("HTTP round trip failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	logger.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
