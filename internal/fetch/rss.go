package fetch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/tickerbrief/tickerbrief/internal/infra"
	"github.com/tickerbrief/tickerbrief/pkg/models"
	"github.com/tickerbrief/tickerbrief/pkg/utils"
)

// FeedSource is one configured RSS feed.
type FeedSource struct {
	Name string // publisher name, matched against the quality table
	URL  string
}

// DefaultFeedSources lists the market-news RSS feeds used when the
// config does not override them.
var DefaultFeedSources = []FeedSource{
	{Name: "CNBC", URL: "https://search.cnbc.com/rs/search/combinedcms/view.xml?partnerId=wrss01&id=10001147"},
	{Name: "TechCrunch", URL: "https://techcrunch.com/feed/"},
	{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
}

// RSS fetches headlines from a list of RSS feeds concurrently. A
// failed feed is skipped rather than failing the whole fetch.
type RSS struct {
	sources []FeedSource
	cache   *infra.Cache
	limiter *infra.RateLimiter
	parser  *gofeed.Parser
}

// NewRSS creates an RSS provider over the given feeds; nil means the
// default feed list.
func NewRSS(sources []FeedSource) *RSS {
	if len(sources) == 0 {
		sources = DefaultFeedSources
	}
	return &RSS{
		sources: sources,
		cache:   infra.NewCache(10 * time.Minute),
		limiter: infra.NewRateLimiter(2, time.Second),
		parser:  gofeed.NewParser(),
	}
}

// Name returns the provider name.
func (r *RSS) Name() string { return "RSS" }

// Headlines fetches every feed and keeps the items published on the
// given date. Items without a parsable timestamp are kept; the scorer
// handles their epoch fallback.
func (r *RSS) Headlines(ctx context.Context, date string) ([]models.Article, error) {
	var mu sync.Mutex
	var all []models.Article

	g, ctx := errgroup.WithContext(ctx)
	for _, src := range r.sources {
		g.Go(func() error {
			articles, err := r.fetchFeed(ctx, src)
			if err != nil {
				// Non-critical: a dead feed should not sink the run.
				return nil
			}
			mu.Lock()
			all = append(all, articles...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]models.Article, 0, len(all))
	for _, a := range all {
		if a.PublishedAt == "" || strings.HasPrefix(a.PublishedAt, date) {
			kept = append(kept, a)
		}
	}
	return kept, nil
}

// fetchFeed parses one RSS feed into articles, via the cache.
func (r *RSS) fetchFeed(ctx context.Context, src FeedSource) ([]models.Article, error) {
	if cached, ok := r.cache.Get(src.URL); ok {
		return cached.([]models.Article), nil
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := r.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]models.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := models.Article{
			Title:   item.Title,
			URL:     item.Link,
			Source:  src.Name,
			Summary: stripHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
		} else if item.Published != "" {
			// Normalize odd feed date formats through the shared parser.
			if t := utils.ParseNewsTime(item.Published); !t.Equal(utils.Epoch) {
				a.PublishedAt = t.Format(time.RFC3339)
			}
		}
		articles = append(articles, a)
	}

	r.cache.Set(src.URL, articles)
	return articles, nil
}

// stripHTML drops markup from feed descriptions using goquery.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
