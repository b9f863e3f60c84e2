// Package models defines the shared data shapes passed between the
// fetch, tagging, scoring and report layers.
package models

// Article is a raw news record as delivered by a news provider.
// Timestamps stay as the provider's original strings; parsing happens
// during scoring so a malformed value never aborts a fetch.
type Article struct {
	Title       string `json:"title"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body,omitempty"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at,omitempty"`
}

// Text returns the searchable text of the article: title plus whichever
// of summary, description and body are present, space-joined.
func (a Article) Text() string {
	text := a.Title
	for _, part := range []string{a.Summary, a.Description, a.Body} {
		if part != "" {
			text += " " + part
		}
	}
	return text
}

// TaggedArticle is an Article plus the tickers it mentions.
// Tickers are uppercase, deduplicated and sorted; never mutated after tagging.
type TaggedArticle struct {
	Article
	Tickers []string `json:"tickers"`
}
