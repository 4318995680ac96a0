package marketdata

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

// ClientConfig holds the configuration for the market data client.
type ClientConfig struct {
	ProviderType  provider.ProviderType `validate:"required,oneof=polygon binance"`
	PolygonApiKey string                `validate:"required_if=ProviderType polygon"`
}

// FetchParams holds the parameters for a historical data fetch.
type FetchParams struct {
	Ticker    string    `validate:"required"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required,gtefield=StartDate"`
}

// Client is the market data client responsible for fetching daily bars from
// a provider and shaping them into the price table consumed by the pipeline.
type Client struct {
	provider provider.Provider
	validate *validator.Validate
}

// NewClient creates a new market data client with the given configuration.
func NewClient(config ClientConfig) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid client configuration", err)
	}

	marketProvider, err := provider.NewMarketDataProvider(config.ProviderType, config.PolygonApiKey)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to create %s provider", config.ProviderType)
	}

	return &Client{
		provider: marketProvider,
		validate: validate,
	}, nil
}

// NewClientWithProvider creates a client backed by an existing provider.
// Useful for tests and custom provider implementations.
func NewClientWithProvider(marketProvider provider.Provider) *Client {
	return &Client{
		provider: marketProvider,
		validate: validator.New(),
	}
}

// Fetch retrieves the price table for the requested ticker and inclusive
// date range. A range with no trading days produces an empty table; provider
// failures propagate to the caller.
func (c *Client) Fetch(ctx context.Context, params FetchParams) (*types.Table, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid fetch parameters", err)
	}

	bars, err := c.provider.DailyBars(ctx, params.Ticker, params.StartDate, params.EndDate)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeFetchFailed, err, "failed to fetch daily bars for %s", params.Ticker)
	}

	return types.NewTable(bars), nil
}
