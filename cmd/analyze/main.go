package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-analysis/internal/analysis"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

// analyzeAction is the core logic executed by the CLI command. It builds the
// run configuration, sets up the market data client, and runs the pipeline.
func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	var (
		config analysis.Config
		err    error
	)

	if configPath := cmd.String("config"); configPath != "" {
		config, err = analysis.LoadConfig(configPath)
		if err != nil {
			return err
		}
	} else {
		config = analysis.DefaultConfig(cmd.String("ticker"), cmd.Timestamp("start"), cmd.Timestamp("end"))
		config.Provider = provider.ProviderType(cmd.String("provider"))
		config.OutputDir = cmd.String("output")
	}

	client, err := marketdata.NewClient(marketdata.ClientConfig{
		ProviderType:  config.Provider,
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
	})
	if err != nil {
		return fmt.Errorf("failed to create market data client: %w", err)
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	pipeline, err := analysis.NewPipeline(config, client, appLogger)
	if err != nil {
		return err
	}

	log.Printf("Starting analysis for %s from %s to %s using %s provider...",
		config.Ticker, config.StartDate.Format("2006-01-02"), config.EndDate.Format("2006-01-02"), config.Provider)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if summary.ReportDir != "" {
		log.Printf("Analysis completed. Report written to %s.", summary.ReportDir)
	}

	return nil
}

func main() {
	// Load API keys from a .env file when present.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "Fetch daily prices for a ticker, compute indicators and forecasts, and render a report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "Stock ticker symbol",
				Required: true,
			},
			&cli.TimestampFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "Start date in `YYYY-MM-DD` format (or other RFC3339 compatible)",
				Value:   time.Now().AddDate(-2, 0, 0),
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
			},
			&cli.TimestampFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "End date in `YYYY-MM-DD` format (or other RFC3339 compatible). Defaults to today.",
				Value:   time.Now(),
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Data provider to use (e.g., %s, %s)", provider.ProviderPolygon, provider.ProviderBinance),
				Value:   string(provider.ProviderPolygon),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path to the report output directory",
				Value:   "output",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file; overrides the other flags",
			},
		},
		Action: analyzeAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
