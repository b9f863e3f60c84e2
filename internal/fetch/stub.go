package fetch

import (
	"context"

	"github.com/tickerbrief/tickerbrief/pkg/models"
)

// Stub returns a fixed set of headlines for any date. The articles are
// stable so tests and offline runs are deterministic; only the
// timestamps vary with the requested date.
type Stub struct{}

// NewStub creates the stub provider.
func NewStub() *Stub { return &Stub{} }

// Name returns the provider name.
func (s *Stub) Name() string { return "Stub" }

// Headlines returns the mock headlines for the given date.
func (s *Stub) Headlines(_ context.Context, date string) ([]models.Article, error) {
	morning := date + "T08:00:00Z"
	afternoon := date + "T14:00:00Z"

	return []models.Article{
		{
			Title:       "Apple's new AI features drive strong upgrade cycle",
			URL:         "https://example.com/apple-upgrade-cycle",
			Source:      "Reuters",
			PublishedAt: morning,
			Body: "Apple is rolling out upgraded iPhone and Mac software with on-device" +
				" generative AI, which analysts say could sustain record demand for" +
				" Apple hardware this holiday season.",
		},
		{
			Title:       "Microsoft cloud growth beats expectations in latest quarter",
			URL:         "https://example.com/microsoft-cloud-growth",
			Source:      "Bloomberg",
			PublishedAt: afternoon,
			Body: "Microsoft reported another quarter of Azure growth that beats Wall" +
				" Street expectations as Windows and Teams adoption remains strong among" +
				" enterprise clients.",
		},
		{
			Title:       "Nvidia GPUs power record data center demand",
			URL:         "https://example.com/nvidia-data-center",
			Source:      "Financial Times",
			PublishedAt: morning,
			Body: "Cloud providers are racing to secure more Nvidia GPU supply to support" +
				" artificial intelligence workloads, keeping Nvidia's data center" +
				" revenue at record highs and sustaining strong growth guidance.",
		},
		{
			Title:       "Exxon Mobil faces new emissions disclosure lawsuit",
			URL:         "https://example.com/exxon-lawsuit",
			Source:      "Associated Press",
			PublishedAt: afternoon,
			Body: "Environmental groups filed a lawsuit alleging ExxonMobil misled" +
				" investors about long-term emissions impacts, adding legal pressure" +
				" and the potential for negative headlines.",
		},
	}, nil
}
