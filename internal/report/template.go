package report

// dailyTemplate is the HTML template for the daily ideas report,
// embedded as a constant so the binary has no template file dependency.
const dailyTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Daily Stock Ideas — {{.Date}}</title>
<style>
  :root {
    --bg: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --green: #16a34a;
    --red: #dc2626;
    --section-bg: #f8fafc;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 860px;
    margin: 0 auto;
    padding: 24px;
  }
  h1 { font-size: 1.5rem; color: var(--accent); margin-bottom: 4px; }
  h2 { font-size: 1.2rem; margin: 24px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  .muted { color: var(--muted); font-size: 0.85rem; }
  .idea {
    background: var(--section-bg);
    border: 1px solid var(--border);
    border-radius: 8px;
    padding: 14px 16px;
    margin-bottom: 12px;
  }
  .idea-head { display: flex; justify-content: space-between; align-items: baseline; }
  .ticker-badge {
    display: inline-block;
    background: var(--accent);
    color: white;
    padding: 2px 12px;
    border-radius: 4px;
    font-weight: 700;
    font-size: 1.05rem;
  }
  .score { font-weight: 700; font-size: 1.1rem; }
  .score.high { color: var(--green); }
  .score.low { color: var(--red); }
  ul.why { margin: 8px 0 4px 20px; }
  ul.links { margin: 4px 0 0 20px; font-size: 0.85rem; }
  ul.links a { color: var(--accent); text-decoration: none; word-break: break-all; }
  .footer { margin-top: 24px; padding-top: 12px; border-top: 1px solid var(--border); }
</style>
</head>
<body>
<h1>Daily Stock Ideas — {{.Date}}</h1>
<p class="muted">Generated {{.GeneratedAt}}</p>

<h2>Top Ideas</h2>
{{if .Ideas}}
{{range .Ideas}}
<div class="idea">
  <div class="idea-head">
    <span class="ticker-badge">{{.Ticker}}</span>
    <span class="score {{if ge .Score 0.5}}high{{else}}low{{end}}">{{printf "%.4f" .Score}}</span>
  </div>
  <ul class="why">
    {{range .Why}}<li>{{.}}</li>{{end}}
  </ul>
  <ul class="links">
    {{range .Links}}<li><a href="{{.URL}}">{{.URL}}</a> <span class="muted">{{.PublishedAt}}</span></li>{{end}}
  </ul>
</div>
{{end}}
{{else}}
<p class="muted">No ideas for this date.</p>
{{end}}

<div class="footer muted">
  <p>Articles Reviewed: {{.ArticlesReviewed}}</p>
  <p>Data source: {{.DataSource}}</p>
</div>
</body>
</html>`
