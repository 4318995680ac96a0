package indicator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/rxtech-lab/argo-analysis/internal/types"
)

// Transform is a calculator that appends one or more derived columns to the
// price table. Transforms write disjoint columns, so applying them in any
// order produces the same table.
type Transform interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Apply appends the indicator's column(s) to the table. A table with too
	// few rows for the configured window is left unchanged and reported with
	// an InsufficientDataError, which callers treat as a skip.
	Apply(table *types.Table) error
}

// ColumnName builds the derived column name for an indicator and window,
// e.g. "ma_50". Window is part of the name so the same indicator with a
// different window never collides.
func ColumnName(indicatorType types.IndicatorType, window int) string {
	return fmt.Sprintf("%s_%d", indicatorType, window)
}

// rolling applies fn to each trailing window of values. Rows before the
// first full window are NaN. fn receives windows that may themselves contain
// NaN; gonum's statistics propagate NaN, which is the intended behavior.
func rolling(values []float64, window int, fn func([]float64) float64) []float64 {
	out := make([]float64, len(values))

	for i := range values {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}

		out[i] = fn(values[i-window+1 : i+1])
	}

	return out
}

func rollingMean(values []float64, window int) []float64 {
	return rolling(values, window, func(w []float64) float64 {
		return stat.Mean(w, nil)
	})
}

func rollingStdDev(values []float64, window int) []float64 {
	return rolling(values, window, func(w []float64) float64 {
		return stat.StdDev(w, nil)
	})
}

// percentChange returns the day-over-day fractional change of values. The
// first element has no prior day and is NaN.
func percentChange(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(out) > 0 {
		out[0] = math.NaN()
	}

	for i := 1; i < len(values); i++ {
		out[i] = (values[i] - values[i-1]) / values[i-1]
	}

	return out
}
