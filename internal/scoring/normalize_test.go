package scoring

import (
	"testing"
	"time"

	"github.com/tickerbrief/tickerbrief/pkg/utils"
)

// ── NormalizeTitle ──

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercases", "MEGA Beats Expectations", "mega beats expectations"},
		{"collapses whitespace", "MEGA   beats\t expectations", "mega beats expectations"},
		{"strips em-dash clause", "MEGA beats expectations — update", "mega beats expectations"},
		{"strips hyphen clause", "MEGA beats expectations - Reuters exclusive", "mega beats expectations"},
		{"strips trailing punctuation", "MEGA beats expectations!?", "mega beats expectations"},
		{"strips trailing dashes", "MEGA beats expectations —", "mega beats expectations"},
		{"keeps internal hyphens", "all-time high for MEGA", "all-time high for mega"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTitle(tc.input)
			if got != tc.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeTitleSharedKey(t *testing.T) {
	a := NormalizeTitle("MEGA beats expectations — update")
	b := NormalizeTitle("MEGA  beats   expectations")
	if a != b {
		t.Errorf("titles should normalize to the same key: %q vs %q", a, b)
	}
}

// ── quality table ──

func TestQualityTableLookup(t *testing.T) {
	table := newQualityTable(SourceQuality, DefaultSourceQuality)

	if got := table.lookup("Reuters"); got != 1.00 {
		t.Errorf("Reuters: got %.2f, want 1.00", got)
	}
	if got := table.lookup("reuters"); got != 1.00 {
		t.Errorf("lookup should be case-insensitive: got %.2f, want 1.00", got)
	}
	if got := table.lookup("  Bloomberg  "); got != 0.95 {
		t.Errorf("lookup should trim whitespace: got %.2f, want 0.95", got)
	}
	if got := table.lookup("Some Unknown Blog"); got != DefaultSourceQuality {
		t.Errorf("unknown publisher: got %.2f, want %.2f", got, DefaultSourceQuality)
	}
	if got := table.lookup(""); got != DefaultSourceQuality {
		t.Errorf("empty publisher: got %.2f, want %.2f", got, DefaultSourceQuality)
	}
	if got := table.lookup("Biztoc.com"); got != 0.30 {
		t.Errorf("Biztoc.com: got %.2f, want 0.30", got)
	}
}

// ── keyword matcher ──

func TestKeywordMatcherWholeWord(t *testing.T) {
	m := newKeywordMatcher(PositiveKeywords)

	hits := m.hits("Company beats estimates with record profit growth")
	want := map[string]bool{"beats": true, "record": true, "profit": true, "growth": true}
	if len(hits) != len(want) {
		t.Fatalf("hits = %v, want keys %v", hits, want)
	}
	for _, h := range hits {
		if !want[h] {
			t.Errorf("unexpected hit %q", h)
		}
	}

	// "winning" must not match "win" as a substring.
	if got := m.hits("a winning streak"); len(got) != 0 {
		t.Errorf("substring should not match: got %v", got)
	}

	// Case-insensitive.
	if got := m.hits("STRONG results"); len(got) != 1 || got[0] != "strong" {
		t.Errorf("case-insensitive match failed: got %v", got)
	}
}

func TestKeywordMatcherCountsOnce(t *testing.T) {
	m := newKeywordMatcher(NegativeKeywords)
	hits := m.hits("lawsuit after lawsuit after lawsuit")
	if len(hits) != 1 || hits[0] != "lawsuit" {
		t.Errorf("repeated keyword should count once: got %v", hits)
	}
}

// ── timestamp parsing (shared util, exercised from scoring's view) ──

func TestParseNewsTimeZSuffix(t *testing.T) {
	got := utils.ParseNewsTime("2025-09-17T08:00:00Z")
	want := time.Date(2025, 9, 17, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseNewsTimeMalformed(t *testing.T) {
	if got := utils.ParseNewsTime("not-a-date"); !got.Equal(utils.Epoch) {
		t.Errorf("malformed timestamp should map to epoch, got %v", got)
	}
	if got := utils.ParseNewsTime(""); !got.Equal(utils.Epoch) {
		t.Errorf("empty timestamp should map to epoch, got %v", got)
	}
}
