package models

// Link is one piece of supporting evidence attached to an Idea.
// PublishedAt carries the provider's original timestamp string.
type Link struct {
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// Idea is one ticker's aggregated, scored output for a single day.
// Score is always within [0, 1]. Why holds at most three human-readable
// reasons; Links holds at most five evidence links ordered by descending
// (source quality, published time) with no duplicate URLs.
type Idea struct {
	Ticker string   `json:"ticker"`
	Score  float64  `json:"score"`
	Why    []string `json:"why"`
	Links  []Link   `json:"links"`
}
