package forecast

import (
	stderrors "errors"

	"gonum.org/v1/gonum/mat"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// DefaultLags is the fixed autoregressive order of the reference model
// (ARIMA with 5 AR terms, 1 differencing step, no MA terms).
const DefaultLags = 5

// Autoregressive forecasts closing prices with an AR model fitted by least
// squares on the once-differenced close series.
type Autoregressive struct {
	lags    int
	horizon int
}

// NewAutoregressive creates an autoregressive forecaster.
func NewAutoregressive(lags, horizon int) (*Autoregressive, error) {
	if lags <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "lags must be a positive integer, got %d", lags)
	}

	if horizon <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidHorizon, "horizon must be a positive integer, got %d", horizon)
	}

	return &Autoregressive{
		lags:    lags,
		horizon: horizon,
	}, nil
}

// Horizon returns the number of days forecast ahead.
func (a *Autoregressive) Horizon() int {
	return a.horizon
}

// Forecast fits d[t] = c + phi_1*d[t-1] + ... + phi_lags*d[t-lags] on the
// differenced closes, then iterates horizon steps ahead and integrates the
// differences back onto the last observed close.
func (a *Autoregressive) Forecast(table *types.Table) ([]float64, error) {
	closes := table.Closes()

	if len(closes) < a.horizon {
		return nil, errors.NewInsufficientDataErrorf(a.horizon, len(closes), "",
			"not enough data to fit the autoregressive model: need %d rows, have %d", a.horizon, len(closes))
	}

	diffs := make([]float64, len(closes)-1)
	for i := range diffs {
		diffs[i] = closes[i+1] - closes[i]
	}

	// One observation per row of the lag matrix; the fit needs at least as
	// many observations as coefficients.
	observations := len(diffs) - a.lags
	if observations < a.lags+1 {
		return nil, errors.NewInsufficientDataErrorf(a.lags+1, max(observations, 0), "",
			"not enough differenced observations for %d lags: have %d", a.lags, max(observations, 0))
	}

	design := mat.NewDense(observations, a.lags+1, nil)
	response := mat.NewVecDense(observations, nil)

	for row := 0; row < observations; row++ {
		t := row + a.lags
		design.Set(row, 0, 1)

		for lag := 1; lag <= a.lags; lag++ {
			design.Set(row, lag, diffs[t-lag])
		}

		response.SetVec(row, diffs[t])
	}

	var qr mat.QR
	qr.Factorize(design)

	coef := mat.NewVecDense(a.lags+1, nil)

	if err := qr.SolveVecTo(coef, false, response); err != nil {
		// A Condition "error" signals an ill-conditioned but solvable system;
		// anything else is a genuine fit failure.
		var cond mat.Condition
		if !stderrors.As(err, &cond) {
			return nil, errors.Wrap(errors.ErrCodeModelFitFailed, "failed to solve autoregressive least squares", err)
		}
	}

	// Iterate forward, feeding each predicted difference back in as a lag.
	recent := make([]float64, a.lags)
	copy(recent, diffs[len(diffs)-a.lags:])

	values := make([]float64, a.horizon)
	level := closes[len(closes)-1]

	for step := 0; step < a.horizon; step++ {
		next := coef.AtVec(0)
		for lag := 1; lag <= a.lags; lag++ {
			next += coef.AtVec(lag) * recent[len(recent)-lag]
		}

		recent = append(recent[1:], next)
		level += next
		values[step] = level
	}

	return values, nil
}
