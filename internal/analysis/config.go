package analysis

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-analysis/internal/forecast"
	"github.com/rxtech-lab/argo-analysis/internal/indicator"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

// Config holds every parameter of a single analysis run. The windows and
// split settings default to the reference run's literals; a YAML file can
// override any of them.
type Config struct {
	Ticker    string                `yaml:"ticker" validate:"required"`
	StartDate time.Time             `yaml:"start_date" validate:"required"`
	EndDate   time.Time             `yaml:"end_date" validate:"required,gtefield=StartDate"`
	Provider  provider.ProviderType `yaml:"provider" validate:"required,oneof=polygon binance"`

	MAWindow         int `yaml:"ma_window" validate:"min=1"`
	VolatilityWindow int `yaml:"volatility_window" validate:"min=1"`
	RSIWindow        int `yaml:"rsi_window" validate:"min=1"`
	BollingerWindow  int `yaml:"bollinger_window" validate:"min=1"`

	Horizon    int     `yaml:"forecast_horizon" validate:"min=1"`
	TrainRatio float64 `yaml:"train_ratio" validate:"gt=0,lt=1"`
	SplitSeed  int64   `yaml:"split_seed"`

	OutputDir string `yaml:"output_dir" validate:"required"`
}

// DefaultConfig returns the reference run configuration for the given
// ticker and date range.
func DefaultConfig(ticker string, startDate, endDate time.Time) Config {
	return Config{
		Ticker:           ticker,
		StartDate:        startDate,
		EndDate:          endDate,
		Provider:         provider.ProviderPolygon,
		MAWindow:         indicator.DefaultMAPeriod,
		VolatilityWindow: indicator.DefaultVolatilityPeriod,
		RSIWindow:        indicator.DefaultRSIPeriod,
		BollingerWindow:  indicator.DefaultBollingerPeriod,
		Horizon:          forecast.DefaultHorizon,
		TrainRatio:       forecast.DefaultTrainRatio,
		SplitSeed:        forecast.DefaultSplitSeed,
		OutputDir:        "output",
	}
}

// LoadConfig reads a YAML config file over the defaults and validates the
// result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config %s", path)
	}

	config := DefaultConfig("", time.Time{}, time.Time{})
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid analysis configuration", err)
	}

	return nil
}
