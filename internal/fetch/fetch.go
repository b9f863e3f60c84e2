// Package fetch retrieves raw news articles for one run date. It
// defines a common Provider interface and implements three concrete
// providers: a deterministic stub, the NewsAPI REST service, and a set
// of RSS feeds. Everything downstream of this package works on plain
// in-memory models.Article values.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tickerbrief/tickerbrief/pkg/models"
)

// Provider fetches one day's headlines from a news backend.
type Provider interface {
	// Name identifies the provider in reports and logs.
	Name() string

	// Headlines returns the raw articles for the given YYYY-MM-DD date.
	Headlines(ctx context.Context, date string) ([]models.Article, error)
}

// ErrMissingAPIKey is returned when a provider needs an API key that
// was not configured.
var ErrMissingAPIKey = fmt.Errorf("news API key not configured")

// ErrHTTP wraps a non-2xx HTTP response.
type ErrHTTP struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ErrHTTP) Error() string {
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.Status, e.Body)
}

// retryable reports whether the request should be retried: server-side
// failures and rate limiting, but never other client errors.
func (e *ErrHTTP) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// httpClient is the shared HTTP client for all providers.
var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// doGet performs a GET and returns the response body. Non-2xx statuses
// become *ErrHTTP with a truncated body for diagnostics.
func doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tickerbrief/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &ErrHTTP{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
