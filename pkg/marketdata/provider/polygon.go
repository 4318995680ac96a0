package provider

import (
	"context"
	"fmt"
	"log"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/schollz/progressbar/v3"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

type PolygonClient struct {
	client *polygon.Client
}

func NewPolygonClient(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "apiKey is required")
	}

	client := polygon.New(apiKey)

	return &PolygonClient{
		client: client,
	}, nil
}

// DailyBars fetches daily aggregates for the ticker from Polygon. The
// aggregates iterator pages through the range transparently; a ticker with
// no trading days in the range simply yields nothing.
func (c *PolygonClient) DailyBars(ctx context.Context, ticker string, startDate time.Time, endDate time.Time) ([]types.Bar, error) {
	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	bar := progressbar.NewOptions(totalDays, progressbar.OptionSetDescription(fmt.Sprintf("Fetching %s", ticker)), progressbar.OptionShowCount())

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(startDate),
		To:         models.Millis(endDate),
	}.WithLimit(50000)

	iter := c.client.ListAggs(ctx, params)

	bars := make([]types.Bar, 0, totalDays)

	for iter.Next() {
		agg := iter.Item()
		bars = append(bars, types.Bar{
			Time:   time.Time(agg.Timestamp),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})

		daysElapsed := int(time.Time(agg.Timestamp).Sub(startDate).Hours() / 24)
		bar.Set(daysElapsed)
	}

	if iter.Err() != nil {
		return nil, errors.Wrap(errors.ErrCodeFetchFailed, "error iterating polygon aggregates", iter.Err())
	}

	bar.Finish()
	log.Printf("Fetched %d daily bars for %s.", len(bars), ticker)

	return bars, nil
}
