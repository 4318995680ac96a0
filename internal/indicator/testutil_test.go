package indicator

import (
	"time"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// tableOf builds a minimal price table whose closing prices are the given
// values, one bar per weekday-agnostic calendar day starting 2024-01-01.
func tableOf(closes ...float64) *types.Table {
	bars := make([]types.Bar, len(closes))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, close := range closes {
		bars[i] = types.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: 1000,
		}
	}

	return types.NewTable(bars)
}

// constantTable builds a table of n rows all closing at value.
func constantTable(n int, value float64) *types.Table {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = value
	}

	return tableOf(closes...)
}
