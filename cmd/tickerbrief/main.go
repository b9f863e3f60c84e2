// tickerbrief — daily stock ideas from news headlines.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tickerbrief/tickerbrief/internal/config"
	"github.com/tickerbrief/tickerbrief/internal/pipeline"
	"github.com/tickerbrief/tickerbrief/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tickerbrief",
	Short: "tickerbrief — daily stock ideas from news headlines",
	Long: `tickerbrief ingests a day's news articles, links them to tickers in a
configured universe, scores each ticker on sentiment keywords and
source credibility, deduplicates overlapping coverage, and writes a
ranked HTML report of ideas with supporting evidence links.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("universe", "", "universe CSV path override")
	rootCmd.PersistentFlags().String("provider", "", "news provider override (stub, newsapi, rss)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(ideasCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
}

// applyFlagOverrides folds persistent flag values into the loaded config.
func applyFlagOverrides(cmd *cobra.Command) {
	if path, _ := cmd.Flags().GetString("universe"); path != "" {
		cfg.Universe.Path = path
	}
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.Fetch.Provider = provider
	}
}

// runDate resolves the optional [date] argument to YYYY-MM-DD.
func runDate(args []string) (string, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	}
	t, err := utils.ParseRunDate(raw)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", raw, err)
	}
	return utils.FormatRunDate(t), nil
}

// --- Run Command ---

var runCmd = &cobra.Command{
	Use:   "run [date]",
	Short: "Run the daily pipeline and write the HTML report",
	Long:  "Fetch the day's headlines, tag and score them, and write reports/daily_<date>.html.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides(cmd)
		date, err := runDate(args)
		if err != nil {
			return err
		}

		p, err := pipeline.New(cfg)
		if err != nil {
			return err
		}
		result, err := p.Run(cmd.Context(), date)
		if err != nil {
			return err
		}

		fmt.Printf("Report written: %s\n", result.ReportPath)
		fmt.Printf("  Data source:       %s\n", result.DataSource)
		fmt.Printf("  Articles reviewed: %d\n", result.ArticlesReviewed)
		fmt.Printf("  Ideas:             %d\n", len(result.Ideas))
		return nil
	},
}

// --- Ideas Command ---

var ideasCmd = &cobra.Command{
	Use:   "ideas [date]",
	Short: "Print the day's ranked ideas to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlagOverrides(cmd)
		date, err := runDate(args)
		if err != nil {
			return err
		}

		p, err := pipeline.New(cfg)
		if err != nil {
			return err
		}
		result, err := p.Ideas(cmd.Context(), date)
		if err != nil {
			return err
		}

		if len(result.Ideas) == 0 {
			fmt.Printf("No ideas for %s (%d articles reviewed, source: %s)\n",
				date, result.ArticlesReviewed, result.DataSource)
			return nil
		}

		fmt.Printf("Ideas for %s (%d articles reviewed, source: %s)\n\n",
			date, result.ArticlesReviewed, result.DataSource)
		for i, idea := range result.Ideas {
			fmt.Printf("%2d. %-8s %.4f  %s\n", i+1, idea.Ticker, idea.Score, strings.Join(idea.Why, "; "))
			for _, link := range idea.Links {
				fmt.Printf("      %s\n", link.URL)
			}
		}
		return nil
	},
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tickerbrief %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and API key status",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("tickerbrief — status")
		fmt.Printf("  Version:   %s (%s)\n", version, commit)
		fmt.Println()

		fmt.Println("  Configuration:")
		fmt.Printf("    Universe:   %s\n", cfg.Universe.Path)
		fmt.Printf("    Provider:   %s\n", cfg.Fetch.Provider)
		fmt.Printf("    Report dir: %s\n", cfg.Report.Dir)
		fmt.Println()

		fmt.Println("  API Keys:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "not set"
			if k.IsSet {
				status = fmt.Sprintf("set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-12s %s\n", k.Name+":", status)
		}
		return nil
	},
}
