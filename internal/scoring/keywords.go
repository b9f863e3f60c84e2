package scoring

import "regexp"

// Fixed sentiment vocabularies. This is deliberate keyword counting,
// not a sentiment model: a keyword either appears in an article's text
// or it does not.
var (
	PositiveKeywords = []string{
		"beats",
		"record",
		"upgrade",
		"raise",
		"surge",
		"strong",
		"growth",
		"profit",
		"accretive",
		"win",
	}

	NegativeKeywords = []string{
		"lawsuit",
		"probe",
		"miss",
		"downgrade",
		"cut",
		"shortfall",
		"recall",
		"fraud",
		"decline",
		"weak",
	}
)

// keywordMatcher finds whole-word, case-insensitive keyword occurrences.
type keywordMatcher struct {
	keywords []string
	patterns []*regexp.Regexp
}

func newKeywordMatcher(keywords []string) keywordMatcher {
	m := keywordMatcher{keywords: keywords}
	for _, kw := range keywords {
		m.patterns = append(m.patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return m
}

// hits returns the subset of the vocabulary found in text, in
// vocabulary order. Each keyword appears at most once regardless of how
// often it occurs.
func (m keywordMatcher) hits(text string) []string {
	var found []string
	for i, pattern := range m.patterns {
		if pattern.MatchString(text) {
			found = append(found, m.keywords[i])
		}
	}
	return found
}
