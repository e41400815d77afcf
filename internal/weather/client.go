// Package weather fetches weather payloads from the station endpoints.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Houeta/field-weather-service/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 10 * time.Second
	userAgent      = "Field-Weather-Service/1.0"
	maxBodyBytes   = 10 << 20
	maxErrorBody   = 512
)

// ErrUpstreamFailure is returned when the weather endpoint cannot be reached or answers badly.
var ErrUpstreamFailure = errors.New("weather upstream failure")

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements Provider over plain HTTP GET requests, one attempt per call.
type Client struct {
	client  HTTPClient    // HTTP client for making requests
	timeout time.Duration // Upper bound of a single request
	limiter *rate.Limiter // Outbound rate limiter
	log     *slog.Logger  // Logger for logging operations
}

// NewClient creates a weather client with an instrumented HTTP transport.
// rateLimit is the number of upstream requests allowed per second, zero disables limiting.
func NewClient(timeout time.Duration, rateLimit int, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), rateLimit)
	}

	return NewClientWithHTTP(
		&http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout,
		limiter,
		log,
	)
}

// NewClientWithHTTP allows injecting a custom HTTP client and limiter.
func NewClientWithHTTP(client HTTPClient, timeout time.Duration, limiter *rate.Limiter, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		client:  client,
		timeout: timeout,
		limiter: limiter,
		log:     log,
	}
}

// Fetch issues a GET to the station URL and returns the JSON body as is.
// Non-2xx statuses, transport errors and non-JSON bodies are reported as ErrUpstreamFailure.
func (c *Client) Fetch(ctx context.Context, station models.Station) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait: %w", ErrUpstreamFailure, err)
		}
	}

	c.log.DebugContext(ctx, "Fetching weather data", "url", station.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, station.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrUpstreamFailure, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute weather request: %w", ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.ErrorContext(ctx, "Weather API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: weather API returned status %d", ErrUpstreamFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrUpstreamFailure, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: weather API returned a non JSON body", ErrUpstreamFailure)
	}

	return json.RawMessage(body), nil
}
