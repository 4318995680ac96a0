package provider

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// Provider fetches historical daily bars for a single ticker.
type Provider interface {
	// DailyBars returns one bar per trading day for the inclusive date
	// range, in chronological order. A ticker with no trading days in the
	// range yields an empty slice, not an error. The context can be used to
	// cancel the fetch.
	DailyBars(ctx context.Context, ticker string, startDate time.Time, endDate time.Time) ([]types.Bar, error)
}

// NewMarketDataProvider creates a new market data provider based on the provider type.
func NewMarketDataProvider(providerType ProviderType, config any) (Provider, error) {
	switch providerType {
	case ProviderBinance:
		return NewBinanceClient()
	case ProviderPolygon:
		apiKey, ok := config.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "polygon provider requires API key string config")
		}

		return NewPolygonClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeProviderUnsupported, "unsupported market data provider: %s", providerType)
	}
}
