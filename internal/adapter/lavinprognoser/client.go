// Package lavinprognoser fetches forecast pages from lavinprognoser.se.
package lavinprognoser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/couchcryptid/lavinbot/internal/observability"
)

// maxPageSize caps how much of a response body is read.
const maxPageSize = 4 << 20

// Client implements domain.PageFetcher over HTTP with retries.
type Client struct {
	retry      *retryablehttp.Client
	httpClient *http.Client
	userAgent  string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a forecast page client. retries is the number of extra
// attempts after a connection error or 5xx response; timeout bounds each
// FetchPage call including retries.
func NewClient(timeout time.Duration, retries int, userAgent string, metrics *observability.Metrics, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = logger.With("component", "retryablehttp")
	rc.RetryMax = retries
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second

	hc := rc.StandardClient()
	hc.Timeout = timeout

	return &Client{
		retry:      rc,
		httpClient: hc,
		userAgent:  userAgent,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchPage downloads the page at url. Non-200 responses are errors.
func (c *Client) FetchPage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchErrors.Inc()
		return nil, fmt.Errorf("fetch forecast page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.FetchErrors.Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("forecast page error: status %d: %s", resp.StatusCode, body)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		c.metrics.FetchErrors.Inc()
		return nil, fmt.Errorf("read forecast page: %w", err)
	}

	c.logger.Debug("forecast page fetched", "url", url, "bytes", len(page), "duration", time.Since(start))
	return page, nil
}
