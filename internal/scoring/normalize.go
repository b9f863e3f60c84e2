package scoring

import (
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Publishers often append a site-specific tagline after an em-dash
	// or hyphen: "MEGA beats expectations — update".
	trailingClause = regexp.MustCompile(`\s+[—-]\s+.*$`)
)

const trailingPunct = " .,;:!?-–—"

// NormalizeTitle canonicalizes an article title for deduplication:
// lowercase, single internal spaces, trailing dash-clause and trailing
// punctuation removed. The result is a dedup key only and is never
// displayed.
func NormalizeTitle(title string) string {
	if title == "" {
		return ""
	}
	normalized := strings.ToLower(strings.TrimSpace(title))
	normalized = whitespaceRun.ReplaceAllString(normalized, " ")
	normalized = trailingClause.ReplaceAllString(normalized, "")
	return strings.TrimRight(normalized, trailingPunct)
}

// record is the per-(ticker, article) scoring view: an article with its
// derived metrics attached. Records exist only within one scoring pass.
type record struct {
	ticker          string
	source          string
	sourceQuality   float64
	title           string
	normalizedTitle string
	url             string
	publishedAt     string
	publishedTime   time.Time
	positiveHits    []string
	negativeHits    []string
}
