package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/tickerbrief/tickerbrief/internal/infra"
	"github.com/tickerbrief/tickerbrief/pkg/models"
)

// newsAPIBaseURL is the NewsAPI "everything" endpoint.
const newsAPIBaseURL = "https://newsapi.org/v2/everything"

// NewsAPIConfig configures the live NewsAPI provider.
type NewsAPIConfig struct {
	APIKey     string
	Query      string        // search query, e.g. "stocks OR earnings"
	PageSize   int           // articles per request, NewsAPI caps at 100
	MaxRetries int           // retries after the first attempt
	Backoff    time.Duration // base backoff between retries
	BaseURL    string        // override for tests; empty means production
}

// NewsAPI fetches headlines from newsapi.org with bounded retries on
// transient failures.
type NewsAPI struct {
	cfg     NewsAPIConfig
	limiter *infra.RateLimiter
}

// NewNewsAPI creates the live provider. The API key is required.
func NewNewsAPI(cfg NewsAPIConfig) (*NewsAPI, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Query == "" {
		cfg.Query = "stock market"
	}
	if cfg.PageSize <= 0 || cfg.PageSize > 100 {
		cfg.PageSize = 100
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = newsAPIBaseURL
	}
	return &NewsAPI{
		cfg:     cfg,
		limiter: infra.NewRateLimiter(5, time.Second),
	}, nil
}

// Name returns the provider name.
func (n *NewsAPI) Name() string { return "NewsAPI" }

// newsAPIResponse mirrors the NewsAPI wire format.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Headlines fetches articles published on the given date. Server errors
// and rate limiting are retried with linear backoff; other client
// errors fail immediately.
func (n *NewsAPI) Headlines(ctx context.Context, date string) ([]models.Article, error) {
	query := url.Values{}
	query.Set("q", n.cfg.Query)
	query.Set("from", date)
	query.Set("to", date)
	query.Set("language", "en")
	query.Set("sortBy", "publishedAt")
	query.Set("pageSize", strconv.Itoa(n.cfg.PageSize))
	query.Set("apiKey", n.cfg.APIKey)
	endpoint := n.cfg.BaseURL + "?" + query.Encode()

	var body []byte
	var err error
	for attempt := 0; attempt <= n.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * n.cfg.Backoff):
			}
		}
		if err = n.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err = doGet(ctx, endpoint)
		if err == nil {
			break
		}
		var httpErr *ErrHTTP
		if errors.As(err, &httpErr) && !httpErr.retryable() {
			return nil, fmt.Errorf("newsapi: %w", err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("newsapi after %d attempts: %w", n.cfg.MaxRetries+1, err)
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("newsapi: %s: %s", parsed.Code, parsed.Message)
	}

	articles := make([]models.Article, 0, len(parsed.Articles))
	for _, item := range parsed.Articles {
		articles = append(articles, models.Article{
			Title:       item.Title,
			Description: item.Description,
			Body:        item.Content,
			URL:         item.URL,
			Source:      item.Source.Name,
			PublishedAt: item.PublishedAt,
		})
	}
	return articles, nil
}
