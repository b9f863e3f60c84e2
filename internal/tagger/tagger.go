// Package tagger links news articles to tickers in the research
// universe using whole-word term matching.
package tagger

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/tickerbrief/tickerbrief/internal/universe"
	"github.com/tickerbrief/tickerbrief/pkg/models"
)

// Matcher matches article text against the compiled universe. It is
// read-only after construction and safe for concurrent use.
type Matcher struct {
	tickers  []string
	patterns map[string][]*regexp.Regexp
}

// NewMatcher compiles whole-word, case-insensitive patterns for every
// term (symbol, name, alias) of every universe entry. An empty universe
// is a configuration error: tagging would silently match nothing while
// downstream scoring depends on matches existing.
func NewMatcher(entries []universe.Entry) (*Matcher, error) {
	if len(entries) == 0 {
		return nil, universe.ErrEmpty
	}

	m := &Matcher{patterns: make(map[string][]*regexp.Regexp, len(entries))}
	for _, entry := range entries {
		var compiled []*regexp.Regexp
		seen := map[string]bool{}
		for _, term := range entry.Terms() {
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			// \b keeps "Apple" from matching inside "Pineapple".
			pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("compile term %q for %s: %w", term, entry.Ticker, err)
			}
			compiled = append(compiled, pattern)
		}
		if len(compiled) == 0 {
			continue
		}
		m.tickers = append(m.tickers, entry.Ticker)
		m.patterns[entry.Ticker] = compiled
	}

	if len(m.tickers) == 0 {
		return nil, universe.ErrEmpty
	}
	sort.Strings(m.tickers)
	return m, nil
}

// Match returns the sorted set of tickers whose any term appears as a
// whole word in the text. Multiple terms for one ticker contribute it
// once.
func (m *Matcher) Match(text string) []string {
	var matched []string
	for _, ticker := range m.tickers {
		for _, pattern := range m.patterns[ticker] {
			if pattern.MatchString(text) {
				matched = append(matched, ticker)
				break
			}
		}
	}
	return matched
}

// Tag attaches matching tickers to each article based on its title and
// body. The input articles are not mutated; an empty input yields an
// empty tagged slice.
func (m *Matcher) Tag(articles []models.Article) []models.TaggedArticle {
	tagged := make([]models.TaggedArticle, 0, len(articles))
	for _, article := range articles {
		text := article.Title
		if article.Body != "" {
			text += " " + article.Body
		}
		tagged = append(tagged, models.TaggedArticle{
			Article: article,
			Tickers: m.Match(text),
		})
	}
	return tagged
}
