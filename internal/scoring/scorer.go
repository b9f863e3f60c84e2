// Package scoring turns a day's tagged articles into a ranked list of
// per-ticker ideas: it normalizes per-article metrics, applies the
// source-quality gate, collapses duplicate coverage and computes a
// bounded composite score with supporting reasons and evidence links.
package scoring

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tickerbrief/tickerbrief/pkg/models"
	"github.com/tickerbrief/tickerbrief/pkg/utils"
)

// Options carries the tables and thresholds the scorer runs with.
// Everything is fixed at construction time; the scorer holds no mutable
// state between runs.
type Options struct {
	SourceQuality        map[string]float64
	DefaultSourceQuality float64
	MinSourceQuality     float64
	PositiveKeywords     []string
	NegativeKeywords     []string
	MaxReasons           int
	MaxLinks             int
}

// DefaultOptions returns the standard scoring configuration.
func DefaultOptions() Options {
	return Options{
		SourceQuality:        SourceQuality,
		DefaultSourceQuality: DefaultSourceQuality,
		MinSourceQuality:     MinSourceQuality,
		PositiveKeywords:     PositiveKeywords,
		NegativeKeywords:     NegativeKeywords,
		MaxReasons:           3,
		MaxLinks:             5,
	}
}

// Scorer is the scoring-and-deduplication engine. It is read-only after
// construction: ScoreDay is a pure function of its input, so repeated
// runs over the same articles produce identical output.
type Scorer struct {
	quality    qualityTable
	minQuality float64
	positive   keywordMatcher
	negative   keywordMatcher
	maxReasons int
	maxLinks   int
}

// NewScorer builds a scorer from the given options.
func NewScorer(opts Options) *Scorer {
	return &Scorer{
		quality:    newQualityTable(opts.SourceQuality, opts.DefaultSourceQuality),
		minQuality: opts.MinSourceQuality,
		positive:   newKeywordMatcher(opts.PositiveKeywords),
		negative:   newKeywordMatcher(opts.NegativeKeywords),
		maxReasons: opts.MaxReasons,
		maxLinks:   opts.MaxLinks,
	}
}

// SourceQualityFor resolves a publisher's reputation weight.
func (s *Scorer) SourceQualityFor(source string) float64 {
	return s.quality.lookup(source)
}

// ScoreDay aggregates one day's tagged articles into ticker-level
// ideas, sorted by descending score. Sparse input (no articles, no
// tickers, everything gated out) yields an empty slice, never an error.
func (s *Scorer) ScoreDay(tagged []models.TaggedArticle) []models.Idea {
	perTicker := map[string][]record{}
	var tickerOrder []string

	for _, article := range tagged {
		if len(article.Tickers) == 0 {
			continue
		}

		source := strings.TrimSpace(article.Source)
		if source == "" {
			source = "Unknown Source"
		}
		quality := s.quality.lookup(source)
		if quality < s.minQuality {
			// Quality gate: the article carries zero weight for every
			// ticker it was tagged with.
			continue
		}

		title := strings.TrimSpace(article.Title)
		publishedAt := strings.TrimSpace(article.PublishedAt)
		text := article.Text()

		base := record{
			source:          source,
			sourceQuality:   quality,
			title:           title,
			normalizedTitle: NormalizeTitle(title),
			url:             strings.TrimSpace(article.URL),
			publishedAt:     publishedAt,
			publishedTime:   utils.ParseNewsTime(publishedAt),
			positiveHits:    s.positive.hits(text),
			negativeHits:    s.negative.hits(text),
		}

		for _, ticker := range article.Tickers {
			rec := base
			rec.ticker = ticker
			if _, ok := perTicker[ticker]; !ok {
				tickerOrder = append(tickerOrder, ticker)
			}
			perTicker[ticker] = append(perTicker[ticker], rec)
		}
	}

	// Iterate in first-seen ticker order so score ties resolve by
	// stable input order, not map iteration order.
	ideas := make([]models.Idea, 0, len(tickerOrder))
	for _, ticker := range tickerOrder {
		deduped := dedupe(perTicker[ticker])
		if len(deduped) == 0 {
			continue
		}
		ideas = append(ideas, s.scoreTicker(ticker, deduped))
	}

	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].Score > ideas[j].Score
	})
	return ideas
}

// scoreTicker computes one ticker's idea from its deduplicated records.
func (s *Scorer) scoreTicker(ticker string, deduped []record) models.Idea {
	n := len(deduped)

	base := 0.10
	if n >= 2 {
		base = 0.30
	}

	// Union of keyword hits across articles: a keyword repeated in many
	// articles still counts once.
	positiveUnion := map[string]bool{}
	negativeUnion := map[string]bool{}
	tickerWord := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(ticker) + `\b`)
	qInTitle := false
	for _, rec := range deduped {
		for _, hit := range rec.positiveHits {
			positiveUnion[hit] = true
		}
		for _, hit := range rec.negativeHits {
			negativeUnion[hit] = true
		}
		if rec.normalizedTitle != "" && tickerWord.MatchString(rec.normalizedTitle) {
			qInTitle = true
		}
	}

	positiveBonus := math.Min(0.20, 0.05*float64(len(positiveUnion)))
	negativePenalty := math.Min(0.20, 0.05*float64(len(negativeUnion)))

	bySignal := make([]record, len(deduped))
	copy(bySignal, deduped)
	sort.SliceStable(bySignal, func(i, j int) bool {
		return bySignal[i].sourceQuality > bySignal[j].sourceQuality
	})
	top := bySignal
	if len(top) > 2 {
		top = top[:2]
	}
	topQualityAvg := 0.0
	for _, rec := range top {
		topQualityAvg += rec.sourceQuality
	}
	topQualityAvg /= float64(len(top))
	sourceBoost := (topQualityAvg - 0.5) * 0.4

	score := base + positiveBonus - negativePenalty + sourceBoost
	if qInTitle {
		score += 0.05
	}
	if n >= 3 {
		score += 0.05
	}
	score = math.Max(0.0, math.Min(1.0, score))

	return models.Idea{
		Ticker: ticker,
		Score:  round4(score),
		Why:    s.buildWhy(n, topQualityAvg, len(positiveUnion), len(negativeUnion), qInTitle),
		Links:  s.buildLinks(deduped),
	}
}

// buildWhy assembles the reason list, highest-priority first, capped at
// maxReasons entries.
func (s *Scorer) buildWhy(n int, topQualityAvg float64, positives, negatives int, qInTitle bool) []string {
	var why []string
	premium := topQualityAvg >= 0.75

	switch {
	case n >= 3 && premium:
		why = append(why, strconv.Itoa(n)+" high-quality sources")
	case n >= 3:
		why = append(why, strconv.Itoa(n)+" confirming articles")
	case n == 2 && premium:
		why = append(why, "2 high-quality sources")
	case n == 2:
		why = append(why, "2 sources")
	case premium:
		why = append(why, "Premium single-source")
	default:
		why = append(why, "Single-source read")
	}

	if positives > 0 {
		why = append(why, strconv.Itoa(positives)+" positive keywords")
	}
	if qInTitle {
		why = append(why, "qInTitle match")
	}
	if negatives > 0 && len(why) < s.maxReasons {
		why = append(why, strconv.Itoa(negatives)+" negative keywords")
	}

	if len(why) > s.maxReasons {
		why = why[:s.maxReasons]
	}
	return why
}

// buildLinks picks the evidence links: records ordered by descending
// (source quality, published time), first maxLinks with a non-empty URL.
// Deduplication already guarantees URL uniqueness.
func (s *Scorer) buildLinks(deduped []record) []models.Link {
	ordered := make([]record, len(deduped))
	copy(ordered, deduped)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].sourceQuality != ordered[j].sourceQuality {
			return ordered[i].sourceQuality > ordered[j].sourceQuality
		}
		return ordered[i].publishedTime.After(ordered[j].publishedTime)
	})

	var links []models.Link
	for _, rec := range ordered {
		if rec.url == "" {
			continue
		}
		links = append(links, models.Link{URL: rec.url, PublishedAt: rec.publishedAt})
		if len(links) == s.maxLinks {
			break
		}
	}
	return links
}

// round4 rounds a score to four decimal places for stable output.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
