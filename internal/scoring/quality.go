package scoring

import "strings"

// SourceQuality is the static reputation table for known publishers.
// Values are weights in [0, 1]; there is no network lookup and no
// learning. Publishers not listed here get DefaultSourceQuality.
var SourceQuality = map[string]float64{
	"Reuters":             1.00,
	"Bloomberg":           0.95,
	"Financial Times":     0.92,
	"Wall Street Journal": 0.90,
	"AP News":             0.88,
	"Associated Press":    0.88,
	"CNBC":                0.80,
	"The Verge":           0.75,
	"TechCrunch":          0.72,
	"GlobeNewswire":       0.60,
	"Business Wire":       0.60,
	"Yahoo Entertainment": 0.35,
	"Biztoc.com":          0.30,
	"Thefly.com":          0.30,
}

const (
	// DefaultSourceQuality is assigned to unknown or missing publishers.
	DefaultSourceQuality = 0.50

	// MinSourceQuality is the quality gate: articles from sources below
	// this weight are excluded from scoring entirely, for every ticker
	// they were tagged with.
	MinSourceQuality = 0.50
)

// qualityTable resolves publisher names case-insensitively.
type qualityTable struct {
	byName   map[string]float64
	fallback float64
}

func newQualityTable(weights map[string]float64, fallback float64) qualityTable {
	byName := make(map[string]float64, len(weights))
	for name, weight := range weights {
		byName[strings.ToLower(name)] = weight
	}
	return qualityTable{byName: byName, fallback: fallback}
}

func (t qualityTable) lookup(source string) float64 {
	key := strings.ToLower(strings.TrimSpace(source))
	if key == "" {
		return t.fallback
	}
	if weight, ok := t.byName[key]; ok {
		return weight
	}
	return t.fallback
}
