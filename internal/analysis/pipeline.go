package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-analysis/internal/forecast"
	"github.com/rxtech-lab/argo-analysis/internal/indicator"
	"github.com/rxtech-lab/argo-analysis/internal/logger"
	"github.com/rxtech-lab/argo-analysis/internal/report"
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata"
)

// Fetcher retrieves the price table for a ticker and date range.
type Fetcher interface {
	Fetch(ctx context.Context, params marketdata.FetchParams) (*types.Table, error)
}

// Summary collects everything a run produced: the enriched table, both
// forecast sequences and the directory holding the rendered report.
// Forecast slices are empty when their guard skipped the model.
type Summary struct {
	Table                  *types.Table
	RegressionForecast     []float64
	RegressionMAE          float64
	AutoregressiveForecast []float64
	ReportDir              string
}

// Pipeline is the single-run analysis flow: fetch, enrich with indicators,
// forecast, report. The table is owned by the run and handed from stage to
// stage; nothing outlives Run.
type Pipeline struct {
	config  Config
	fetcher Fetcher
	logger  *logger.Logger
}

// NewPipeline creates a pipeline from a validated configuration.
func NewPipeline(config Config, fetcher Fetcher, log *logger.Logger) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Pipeline{
		config:  config,
		fetcher: fetcher,
		logger:  log,
	}, nil
}

// Run executes the pipeline once. An empty fetch result is terminal for the
// later stages but not an error; insufficient-data guards inside indicators
// and forecasters log a diagnostic and skip their stage.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	table, err := p.fetcher.Fetch(ctx, marketdata.FetchParams{
		Ticker:    p.config.Ticker,
		StartDate: p.config.StartDate,
		EndDate:   p.config.EndDate,
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{Table: table}

	if table.Len() == 0 {
		p.logger.Warn("no data returned for ticker, skipping analysis",
			zap.String("ticker", p.config.Ticker))

		return summary, nil
	}

	if err := p.applyIndicators(table); err != nil {
		return nil, err
	}

	p.runForecasts(table, summary)

	reportDir, err := p.writeReport(table)
	if err != nil {
		return nil, err
	}

	summary.ReportDir = reportDir

	return summary, nil
}

// applyIndicators runs the four calculators in the reference order. Each
// writes its own columns, so the order only matters for column ordering in
// the exported file.
func (p *Pipeline) applyIndicators(table *types.Table) error {
	ma, err := indicator.NewMA(p.config.MAWindow)
	if err != nil {
		return err
	}

	volatility, err := indicator.NewVolatility(p.config.VolatilityWindow)
	if err != nil {
		return err
	}

	rsi, err := indicator.NewRSI(p.config.RSIWindow)
	if err != nil {
		return err
	}

	bollinger, err := indicator.NewBollingerBands(p.config.BollingerWindow)
	if err != nil {
		return err
	}

	for _, transform := range []indicator.Transform{ma, volatility, rsi, bollinger} {
		if err := transform.Apply(table); err != nil {
			if errors.IsInsufficientDataError(err) {
				p.logger.Warn("skipping indicator",
					zap.String("indicator", string(transform.Name())),
					zap.Error(err))

				continue
			}

			return err
		}
	}

	return nil
}

// runForecasts fits both models. Either model skipping on insufficient data
// leaves its slice empty in the summary.
func (p *Pipeline) runForecasts(table *types.Table, summary *Summary) {
	regression, err := forecast.NewRegression(p.config.Horizon, p.config.TrainRatio, p.config.SplitSeed)
	if err == nil {
		result, ferr := regression.Forecast(table)

		switch {
		case ferr == nil:
			summary.RegressionForecast = result.Values
			summary.RegressionMAE = result.MAE

			fmt.Printf("Regression forecast MAE: %.4f\n", result.MAE)
			fmt.Printf("Regression forecast (%d days): %v\n", len(result.Values), result.Values)
		case errors.IsInsufficientDataError(ferr):
			p.logger.Warn("skipping regression forecast", zap.Error(ferr))
		default:
			p.logger.Error("regression forecast failed", zap.Error(ferr))
		}
	}

	autoregressive, err := forecast.NewAutoregressive(forecast.DefaultLags, p.config.Horizon)
	if err == nil {
		values, ferr := autoregressive.Forecast(table)

		switch {
		case ferr == nil:
			summary.AutoregressiveForecast = values

			fmt.Printf("Autoregressive forecast (%d days): %v\n", len(values), values)
		case errors.IsInsufficientDataError(ferr):
			p.logger.Warn("skipping autoregressive forecast", zap.Error(ferr))
		default:
			p.logger.Error("autoregressive forecast failed", zap.Error(ferr))
		}
	}
}

// writeReport renders the charts and exports the table into a fresh
// run directory.
func (p *Pipeline) writeReport(table *types.Table) (string, error) {
	runDir := filepath.Join(p.config.OutputDir, uuid.NewString())
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to create report directory %s", runDir)
	}

	priceColumns := report.PriceChartColumns{
		MovingAverage:  indicator.ColumnName(types.IndicatorTypeMA, p.config.MAWindow),
		BollingerUpper: indicator.ColumnName("bb_upper", p.config.BollingerWindow),
		BollingerLower: indicator.ColumnName("bb_lower", p.config.BollingerWindow),
	}

	priceTitle := fmt.Sprintf("%s Closing Price", p.config.Ticker)
	if err := report.RenderPriceChart(table, priceColumns, priceTitle, filepath.Join(runDir, "price.html")); err != nil {
		return "", err
	}

	rsiColumn := indicator.ColumnName(types.IndicatorTypeRSI, p.config.RSIWindow)
	if table.Column(rsiColumn).IsSome() {
		rsiTitle := fmt.Sprintf("%s RSI", p.config.Ticker)
		if err := report.RenderRSIChart(table, rsiColumn, rsiTitle, filepath.Join(runDir, "rsi.html")); err != nil {
			return "", err
		}
	}

	if err := report.WriteCSV(table, filepath.Join(runDir, "data.csv")); err != nil {
		return "", err
	}

	p.logger.Info("report written", zap.String("dir", runDir))

	return runDir, nil
}
