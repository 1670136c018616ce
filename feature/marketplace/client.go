package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"catalog-sync/core/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const apiKeyHeader = "x-api-key"

// ErrBatchTooLarge is returned before any request is sent when more than MaxBatchSize ids are requested.
var ErrBatchTooLarge = errors.New("too many ids for one getoffers call")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client talks to the marketplace developer API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient creates a client from configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return newClient(&http.Client{Timeout: time.Duration(timeout) * time.Second}, cfg, logger)
}

func newClient(httpClient *http.Client, cfg Config, logger *zap.Logger) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := max(cfg.Burst, 1)

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}
}

// GetLiveFeed returns the minified entries of a named feed.
// A feed without items yields an empty slice.
func (c *Client) GetLiveFeed(ctx context.Context, feed string) ([]FeedEntry, error) {
	var body NamedFeed
	endpoint := "/feed/" + url.PathEscape(feed)
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

// GetFullRecords returns the full listings for at most MaxBatchSize ids.
func (c *Client) GetFullRecords(ctx context.Context, ids []uuid.UUID) ([]Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrBatchTooLarge, len(ids), MaxBatchSize)
	}

	payload, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ids: %w", err)
	}

	var listings []Listing
	if err := c.do(ctx, http.MethodPost, "/getoffers", payload, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveMarketplaceRequest(metricEndpoint(endpoint), err, time.Since(start))
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", endpoint, err)
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.String("endpoint", endpoint), zap.Error(closeErr))
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return &StatusError{Endpoint: endpoint, StatusCode: res.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func metricEndpoint(endpoint string) string {
	if strings.HasPrefix(endpoint, "/feed/") {
		return "feed"
	}
	return strings.TrimPrefix(endpoint, "/")
}
