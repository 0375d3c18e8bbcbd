// Package fpl is the HTTP client for the public Fantasy Premier League API.
// Every call performs a fresh fetch: no caching, no retries, one attempt per
// request.
package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/fplpulse/fpl-pulse/internal/platform/logging"
	"github.com/fplpulse/fpl-pulse/internal/platform/resilience"
	"github.com/fplpulse/fpl-pulse/internal/usecase"
)

const (
	defaultBaseURL = "https://fantasy.premierleague.com/api"
	defaultTimeout = 30 * time.Second

	bootstrapPath = "/bootstrap-static/"
	fixturesPath  = "/fixtures/"

	// bootstrap-static runs to a few MB in-season; cap well above that.
	maxResponseBytes = 16 << 20
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	breakerEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
	if cfg.CircuitBreaker.Enabled {
		client.breaker = resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
		client.breakerEnabled = true
	}
	return client
}

// FetchBootstrap retrieves the bootstrap-static dataset: events, teams and
// players for the whole season.
func (c *Client) FetchBootstrap(ctx context.Context) (usecase.BootstrapData, error) {
	var envelope bootstrapEnvelope
	if err := c.doJSON(ctx, bootstrapPath, &envelope); err != nil {
		return usecase.BootstrapData{}, fmt.Errorf("fetch bootstrap: %w", err)
	}
	return mapBootstrap(envelope), nil
}

// FetchFixtures retrieves the full-season fixture list.
func (c *Client) FetchFixtures(ctx context.Context) ([]usecase.Fixture, error) {
	var items []fixtureItem
	if err := c.doJSON(ctx, fixturesPath, &items); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	return mapFixtures(items), nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.breakerEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fpl request rejected by circuit breaker",
				"path", path,
				"state", c.breaker.State(),
			)
			return fmt.Errorf("%w: circuit breaker open", usecase.ErrUpstreamUnavailable)
		}
	}

	raw, err := c.executeRequest(ctx, c.baseURL+path)
	if c.breakerEnabled {
		if err != nil {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "decode %s payload", path)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "error", err)
		return nil, fmt.Errorf("%w: send request: %v", usecase.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", usecase.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnContext(ctx, "fpl request returned non-2xx",
			"url", fullURL,
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("%w: status=%d body=%s", usecase.ErrUpstreamUnavailable, resp.StatusCode, abbreviate(raw))
	}

	return raw, nil
}

func abbreviate(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}
