// Package report renders the daily ideas report as a standalone HTML
// page and writes it under the configured reports directory.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/tickerbrief/tickerbrief/pkg/models"
)

// Data is everything the daily report template needs.
type Data struct {
	Date             string // YYYY-MM-DD run date
	GeneratedAt      string
	Ideas            []models.Idea
	ArticlesReviewed int
	DataSource       string // provider name, e.g. "Stub" or "NewsAPI"
}

var tmpl = template.Must(template.New("daily").Parse(dailyTemplate))

// Render produces the report HTML.
func Render(data Data) (string, error) {
	if data.GeneratedAt == "" {
		data.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// WriteDaily renders the report and writes it to
// <dir>/daily_<date>.html, creating the directory if needed. It returns
// the written path.
func WriteDaily(dir string, data Data) (string, error) {
	html, err := Render(data)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("daily_%s.html", data.Date))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}
