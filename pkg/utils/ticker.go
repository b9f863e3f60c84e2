package utils

import "strings"

// NormalizeTicker canonicalizes a user-supplied ticker symbol:
// trimmed, uppercased, with any exchange suffix ("AAPL.US") removed.
func NormalizeTicker(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if i := strings.IndexByte(t, '.'); i > 0 {
		t = t[:i]
	}
	return t
}
