// Package universe loads the research universe: the set of tickers
// (with optional names and aliases) the tagger is allowed to link
// articles to.
package universe

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tickerbrief/tickerbrief/pkg/utils"
)

// Entry is one row of the universe table. Ticker is the unique key;
// Name and Aliases supply additional surface forms for matching.
type Entry struct {
	Ticker  string
	Name    string
	Aliases []string
}

// Terms returns every surface form that identifies this ticker in free
// text: the symbol itself, the company name, and all aliases.
func (e Entry) Terms() []string {
	terms := []string{e.Ticker}
	if e.Name != "" {
		terms = append(terms, e.Name)
	}
	terms = append(terms, e.Aliases...)
	return terms
}

// ErrEmpty is returned when the universe source contains no usable rows.
// Tagging against an empty universe would silently match nothing, so
// this is a fatal configuration error.
var ErrEmpty = fmt.Errorf("universe contains no tickers")

// AliasSeparator splits the aliases column into individual aliases.
const AliasSeparator = ";"

// LoadCSV reads universe entries from a CSV file with a
// "ticker,name,aliases" header. A missing file or an empty table is a
// configuration error; the caller should abort the run.
func LoadCSV(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open universe file %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse universe file %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads universe entries from CSV data. The first record is
// treated as a header and used to locate the ticker, name and aliases
// columns.
func Parse(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	tickerCol, ok := cols["ticker"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "ticker")
	}
	nameCol, hasName := cols["name"]
	aliasCol, hasAliases := cols["aliases"]

	var entries []Entry
	seen := map[string]bool{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		ticker := ""
		if tickerCol < len(record) {
			ticker = utils.NormalizeTicker(record[tickerCol])
		}
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true

		entry := Entry{Ticker: ticker}
		if hasName && nameCol < len(record) {
			entry.Name = strings.TrimSpace(record[nameCol])
		}
		if hasAliases && aliasCol < len(record) {
			entry.Aliases = splitAliases(record[aliasCol])
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	return entries, nil
}

// splitAliases splits a delimiter-separated alias list, dropping blanks.
func splitAliases(raw string) []string {
	var aliases []string
	for _, alias := range strings.Split(raw, AliasSeparator) {
		alias = strings.TrimSpace(alias)
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}
	return aliases
}
