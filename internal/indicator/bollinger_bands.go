package indicator

import (
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

const (
	// DefaultBollingerPeriod is the standard 20-day Bollinger window.
	DefaultBollingerPeriod = 20
	// bollingerStdDevs is the band width in standard deviations.
	bollingerStdDevs = 2.0
)

// BollingerBands implements the Bollinger Bands volatility envelope.
type BollingerBands struct {
	period int
}

// NewBollingerBands creates a new Bollinger Bands transform for the given window.
func NewBollingerBands(period int) (*BollingerBands, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	return &BollingerBands{period: period}, nil
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// MiddleColumn returns the column name of the middle band.
func (bb *BollingerBands) MiddleColumn() string {
	return ColumnName("bb_middle", bb.period)
}

// UpperColumn returns the column name of the upper band.
func (bb *BollingerBands) UpperColumn() string {
	return ColumnName("bb_upper", bb.period)
}

// LowerColumn returns the column name of the lower band.
func (bb *BollingerBands) LowerColumn() string {
	return ColumnName("bb_lower", bb.period)
}

// Apply appends the middle, upper and lower band columns: the trailing mean
// of the close plus/minus two trailing standard deviations.
func (bb *BollingerBands) Apply(table *types.Table) error {
	if table.Len() < bb.period {
		return errors.NewInsufficientDataErrorf(bb.period, table.Len(), "", "not enough rows for bollinger bands: need %d, have %d", bb.period, table.Len())
	}

	closes := table.Closes()
	middle := rollingMean(closes, bb.period)
	stddev := rollingStdDev(closes, bb.period)

	upper := make([]float64, len(closes))
	lower := make([]float64, len(closes))

	for i := range closes {
		upper[i] = middle[i] + bollingerStdDevs*stddev[i]
		lower[i] = middle[i] - bollingerStdDevs*stddev[i]
	}

	for _, series := range []types.Series{
		{Name: bb.MiddleColumn(), Values: middle},
		{Name: bb.UpperColumn(), Values: upper},
		{Name: bb.LowerColumn(), Values: lower},
	} {
		if err := table.AddSeries(series); err != nil {
			return err
		}
	}

	return nil
}
