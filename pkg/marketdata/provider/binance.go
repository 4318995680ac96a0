package provider

import (
	"context"
	"strconv"
	"time"

	binance "github.com/adshao/go-binance/v2"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// binancePageSize is the maximum number of klines Binance returns per request.
const binancePageSize = 500

type BinanceClient struct {
	client *binance.Client
}

func NewBinanceClient() (Provider, error) {
	client := binance.NewClient("", "")

	return &BinanceClient{
		client: client,
	}, nil
}

// DailyBars fetches daily klines for the ticker from Binance, paginating in
// 500-row pages, and converts them to our internal bar format.
func (c *BinanceClient) DailyBars(ctx context.Context, ticker string, startDate time.Time, endDate time.Time) ([]types.Bar, error) {
	// Binance API uses milliseconds for timestamps
	currentStartTime := startDate.UnixMilli()
	endTimeMillis := endDate.UnixMilli()

	var bars []types.Bar

	for {
		klines, err := c.client.NewKlinesService().
			Symbol(ticker).
			Interval("1d").
			StartTime(currentStartTime).
			EndTime(endTimeMillis).
			Do(ctx)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFetchFailed, "failed to fetch klines from Binance", err)
		}

		bars = append(bars, convertKlines(klines)...)

		// Last page: no data or a short page.
		if len(klines) < binancePageSize {
			break
		}

		// Use the close time of the last kline + 1ms to avoid duplicates
		lastKline := klines[len(klines)-1]
		currentStartTime = lastKline.CloseTime + 1

		if currentStartTime >= endTimeMillis {
			break
		}
	}

	return bars, nil
}

// convertKlines converts Binance kline data to our internal bar format.
func convertKlines(klines []*binance.Kline) []types.Bar {
	bars := make([]types.Bar, 0, len(klines))

	for _, k := range klines {
		open, _ := strconv.ParseFloat(k.Open, 64)
		high, _ := strconv.ParseFloat(k.High, 64)
		low, _ := strconv.ParseFloat(k.Low, 64)
		closePrice, _ := strconv.ParseFloat(k.Close, 64)
		volume, _ := strconv.ParseFloat(k.Volume, 64)

		bars = append(bars, types.Bar{
			Time:   time.UnixMilli(k.OpenTime), // Using OpenTime as the timestamp for the bar
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		})
	}

	return bars
}
