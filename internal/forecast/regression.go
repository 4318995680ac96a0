package forecast

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

const (
	// DefaultHorizon is the number of trading days forecast ahead.
	DefaultHorizon = 30
	// DefaultTrainRatio is the share of labeled rows used for fitting.
	DefaultTrainRatio = 0.8
	// DefaultSplitSeed makes the train/test split reproducible across runs.
	DefaultSplitSeed = 42
)

// RegressionResult holds the forecast sequence and the held-out accuracy of
// the fitted model.
type RegressionResult struct {
	// Values are the predicted closing prices, one per horizon day.
	Values []float64
	// MAE is the mean absolute error on the held-out test rows.
	MAE float64
}

// Regression forecasts future closing prices with a simple linear model
// mapping the current close to the close Horizon rows ahead. A single
// feature is deliberately naive; the point is the pipeline, not the model.
type Regression struct {
	horizon    int
	trainRatio float64
	seed       int64
}

// NewRegression creates a regression forecaster.
func NewRegression(horizon int, trainRatio float64, seed int64) (*Regression, error) {
	if horizon <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidHorizon, "horizon must be a positive integer, got %d", horizon)
	}

	if trainRatio <= 0 || trainRatio >= 1 {
		return nil, errors.Newf(errors.ErrCodeInvalidSplitRatio, "train ratio must be in (0, 1), got %f", trainRatio)
	}

	return &Regression{
		horizon:    horizon,
		trainRatio: trainRatio,
		seed:       seed,
	}, nil
}

// Horizon returns the number of days forecast ahead.
func (r *Regression) Horizon() int {
	return r.horizon
}

// Forecast labels each row with the close horizon rows ahead, fits the model
// on a shuffled trainRatio split of the labeled rows, reports MAE on the
// remainder and predicts from the final horizon closes, which have no label
// yet. Fewer labeled rows than the horizon is an insufficient-data
// condition, not a model failure.
func (r *Regression) Forecast(table *types.Table) (RegressionResult, error) {
	closes := table.Closes()

	labeled := len(closes) - r.horizon
	if labeled < r.horizon {
		return RegressionResult{}, errors.NewInsufficientDataErrorf(r.horizon, max(labeled, 0), "",
			"not enough data to train the regression model: need %d labeled rows, have %d", r.horizon, max(labeled, 0))
	}

	features := closes[:labeled]
	labels := closes[r.horizon:]

	perm := rand.New(rand.NewSource(r.seed)).Perm(labeled)
	trainSize := int(float64(labeled) * r.trainRatio)

	trainX := make([]float64, 0, trainSize)
	trainY := make([]float64, 0, trainSize)
	testX := make([]float64, 0, labeled-trainSize)
	testY := make([]float64, 0, labeled-trainSize)

	for i, idx := range perm {
		if i < trainSize {
			trainX = append(trainX, features[idx])
			trainY = append(trainY, labels[idx])
		} else {
			testX = append(testX, features[idx])
			testY = append(testY, labels[idx])
		}
	}

	alpha, beta := stat.LinearRegression(trainX, trainY, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return RegressionResult{}, errors.New(errors.ErrCodeModelFitFailed, "linear regression produced NaN coefficients")
	}

	mae := 0.0
	for i := range testX {
		mae += math.Abs(alpha + beta*testX[i] - testY[i])
	}

	if len(testX) > 0 {
		mae /= float64(len(testX))
	}

	values := make([]float64, r.horizon)
	for i, close := range closes[len(closes)-r.horizon:] {
		values[i] = alpha + beta*close
	}

	return RegressionResult{Values: values, MAE: mae}, nil
}
