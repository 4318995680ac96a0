package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// DefaultRSIPeriod is the standard 14-day RSI window.
const DefaultRSIPeriod = 14

// RSI implements the Relative Strength Index using plain trailing means of
// gains and losses (no Wilder smoothing).
type RSI struct {
	period int
}

// NewRSI creates a new RSI transform for the given window.
func NewRSI(period int) (*RSI, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	return &RSI{period: period}, nil
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Apply appends the "rsi_<period>" column.
//
// Day-over-day close differences are split into gains (positive differences)
// and losses (magnitude of negative differences); relative strength is the
// ratio of their trailing means and RSI = 100 - 100/(1+RS). When the mean
// loss is zero the division is left to float arithmetic on purpose: a pure
// uptrend yields RSI 100 via Inf, and a flat window yields NaN via 0/0.
//
// The first row has no previous close, so its change counts as a zero gain
// and zero loss. The column is therefore defined from row period-1 onward,
// one row earlier than window indicators that need period deltas.
func (r *RSI) Apply(table *types.Table) error {
	if table.Len() < r.period {
		return errors.NewInsufficientDataErrorf(r.period, table.Len(), "", "not enough rows for rsi: need %d, have %d", r.period, table.Len())
	}

	closes := table.Closes()
	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))

	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	meanGains := rollingMean(gains, r.period)
	meanLosses := rollingMean(losses, r.period)

	values := make([]float64, len(closes))
	for i := range values {
		if i < r.period-1 {
			values[i] = math.NaN()
			continue
		}

		rs := meanGains[i] / meanLosses[i]
		values[i] = 100 - 100/(1+rs)
	}

	return table.AddSeries(types.Series{
		Name:   ColumnName(r.Name(), r.period),
		Values: values,
	})
}
