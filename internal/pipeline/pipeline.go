// Package pipeline wires the daily run together:
// fetch → tag → score → render.
package pipeline

import (
	"context"
	"fmt"

	"github.com/tickerbrief/tickerbrief/internal/config"
	"github.com/tickerbrief/tickerbrief/internal/fetch"
	"github.com/tickerbrief/tickerbrief/internal/report"
	"github.com/tickerbrief/tickerbrief/internal/scoring"
	"github.com/tickerbrief/tickerbrief/internal/tagger"
	"github.com/tickerbrief/tickerbrief/internal/universe"
	"github.com/tickerbrief/tickerbrief/pkg/models"
)

// Result summarizes one pipeline run.
type Result struct {
	ReportPath       string
	Ideas            []models.Idea
	ArticlesReviewed int
	DataSource       string
}

// Pipeline runs the daily idea generation for a single date. Each run
// is independent: the pipeline holds only read-only collaborators.
type Pipeline struct {
	cfg      *config.Config
	provider fetch.Provider
	matcher  *tagger.Matcher
	scorer   *scoring.Scorer
}

// New builds a pipeline from configuration. The universe is loaded
// eagerly: a missing or empty universe is a fatal configuration error,
// surfaced here rather than mid-run.
func New(cfg *config.Config) (*Pipeline, error) {
	entries, err := universe.LoadCSV(cfg.Universe.Path)
	if err != nil {
		return nil, fmt.Errorf("load universe: %w", err)
	}
	matcher, err := tagger.NewMatcher(entries)
	if err != nil {
		return nil, fmt.Errorf("build matcher: %w", err)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}

	opts := scoring.DefaultOptions()
	if cfg.Scoring.MinSourceQuality > 0 {
		opts.MinSourceQuality = cfg.Scoring.MinSourceQuality
	}
	if cfg.Scoring.DefaultSourceQuality > 0 {
		opts.DefaultSourceQuality = cfg.Scoring.DefaultSourceQuality
	}
	if cfg.Scoring.MaxReasons > 0 {
		opts.MaxReasons = cfg.Scoring.MaxReasons
	}
	if cfg.Scoring.MaxLinks > 0 {
		opts.MaxLinks = cfg.Scoring.MaxLinks
	}

	return &Pipeline{
		cfg:      cfg,
		provider: provider,
		matcher:  matcher,
		scorer:   scoring.NewScorer(opts),
	}, nil
}

// newProvider selects the configured news provider. The "newsapi"
// provider falls back to the stub when no API key is configured, so an
// unconfigured machine still produces a report.
func newProvider(cfg *config.Config) (fetch.Provider, error) {
	switch cfg.Fetch.Provider {
	case "", "stub":
		return fetch.NewStub(), nil
	case "rss":
		var feeds []fetch.FeedSource
		for _, f := range cfg.Fetch.Feeds {
			feeds = append(feeds, fetch.FeedSource{Name: f.Name, URL: f.URL})
		}
		return fetch.NewRSS(feeds), nil
	case "newsapi":
		if cfg.Fetch.NewsAPIKey == "" {
			return fetch.NewStub(), nil
		}
		return fetch.NewNewsAPI(fetch.NewsAPIConfig{
			APIKey:     cfg.Fetch.NewsAPIKey,
			Query:      cfg.Fetch.Query,
			PageSize:   cfg.Fetch.PageSize,
			MaxRetries: cfg.Fetch.MaxRetries,
		})
	default:
		return nil, fmt.Errorf("unknown fetch provider %q", cfg.Fetch.Provider)
	}
}

// Ideas fetches, tags and scores one day's articles without writing a
// report.
func (p *Pipeline) Ideas(ctx context.Context, date string) (Result, error) {
	articles, err := p.provider.Headlines(ctx, date)
	if err != nil {
		return Result{}, fmt.Errorf("fetch headlines: %w", err)
	}

	tagged := p.matcher.Tag(articles)
	ideas := p.scorer.ScoreDay(tagged)

	return Result{
		Ideas:            ideas,
		ArticlesReviewed: len(articles),
		DataSource:       p.provider.Name(),
	}, nil
}

// Run executes the full daily pipeline for the given YYYY-MM-DD date
// and writes the HTML report. It returns the run result including the
// report path.
func (p *Pipeline) Run(ctx context.Context, date string) (Result, error) {
	result, err := p.Ideas(ctx, date)
	if err != nil {
		return Result{}, err
	}

	path, err := report.WriteDaily(p.cfg.Report.Dir, report.Data{
		Date:             date,
		Ideas:            result.Ideas,
		ArticlesReviewed: result.ArticlesReviewed,
		DataSource:       result.DataSource,
	})
	if err != nil {
		return Result{}, err
	}

	result.ReportPath = path
	return result, nil
}
