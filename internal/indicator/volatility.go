package indicator

import (
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// DefaultVolatilityPeriod is the window used by the reference analysis run.
const DefaultVolatilityPeriod = 50

// Volatility implements the trailing standard deviation of the day-over-day
// percent change in closing price.
type Volatility struct {
	period int
}

// NewVolatility creates a new Volatility transform for the given window.
func NewVolatility(period int) (*Volatility, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	return &Volatility{period: period}, nil
}

// Name returns the name of the indicator.
func (v *Volatility) Name() types.IndicatorType {
	return types.IndicatorTypeVolatility
}

// Apply appends the "volatility_<period>" column. The percent-change series
// starts one row late, so the first defined value lands at row index period
// rather than period-1.
func (v *Volatility) Apply(table *types.Table) error {
	if table.Len() < v.period {
		return errors.NewInsufficientDataErrorf(v.period, table.Len(), "", "not enough rows for volatility: need %d, have %d", v.period, table.Len())
	}

	values := rollingStdDev(percentChange(table.Closes()), v.period)

	return table.AddSeries(types.Series{
		Name:   ColumnName(v.Name(), v.period),
		Values: values,
	})
}
