package indicator

import (
	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// DefaultMAPeriod is the window used by the reference analysis run.
const DefaultMAPeriod = 50

// MA implements the simple moving average of the closing price.
type MA struct {
	period int
}

// NewMA creates a new MA transform for the given window.
func NewMA(period int) (*MA, error) {
	if period <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	return &MA{period: period}, nil
}

// Name returns the name of the indicator.
func (m *MA) Name() types.IndicatorType {
	return types.IndicatorTypeMA
}

// Apply appends the "ma_<period>" column: for each row, the arithmetic mean
// of the closing price over the trailing period rows inclusive. The first
// period-1 rows are NaN. Tables shorter than the window produce an all-NaN
// column rather than being skipped.
func (m *MA) Apply(table *types.Table) error {
	values := rollingMean(table.Closes(), m.period)

	return table.AddSeries(types.Series{
		Name:   ColumnName(m.Name(), m.period),
		Values: values,
	})
}
