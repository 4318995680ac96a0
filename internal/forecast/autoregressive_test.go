package forecast

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

type AutoregressiveTestSuite struct {
	suite.Suite
}

func TestAutoregressiveSuite(t *testing.T) {
	suite.Run(t, new(AutoregressiveTestSuite))
}

// randomWalk builds a deterministic pseudo-random close series. Varied
// increments keep the lag matrix well conditioned.
func randomWalk(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	closes := make([]float64, n)
	closes[0] = 100

	for i := 1; i < n; i++ {
		closes[i] = closes[i-1] + rng.Float64()*4 - 2
	}

	return closes
}

func (suite *AutoregressiveTestSuite) TestNewAutoregressiveValidation() {
	_, err := NewAutoregressive(0, 30)
	suite.Error(err)

	_, err = NewAutoregressive(5, 0)
	suite.Error(err)

	model, err := NewAutoregressive(5, 30)
	suite.NoError(err)
	suite.Equal(30, model.Horizon())
}

func (suite *AutoregressiveTestSuite) TestForecastLengthEqualsHorizon() {
	model, err := NewAutoregressive(5, 30)
	suite.NoError(err)

	values, forecastErr := model.Forecast(tableOf(randomWalk(200, 1)...))
	suite.NoError(forecastErr)
	suite.Len(values, 30)

	for i, v := range values {
		suite.False(math.IsNaN(v), "step %d", i)
		suite.False(math.IsInf(v, 0), "step %d", i)
	}
}

func (suite *AutoregressiveTestSuite) TestTableShorterThanHorizon() {
	model, err := NewAutoregressive(5, 30)
	suite.NoError(err)

	values, forecastErr := model.Forecast(tableOf(randomWalk(20, 2)...))
	suite.Error(forecastErr)
	suite.True(errors.IsInsufficientDataError(forecastErr))
	suite.Empty(values)
}

func (suite *AutoregressiveTestSuite) TestTooFewObservationsForLagMatrix() {
	model, err := NewAutoregressive(5, 8)
	suite.NoError(err)

	// 9 rows clear the horizon guard but leave only 3 differenced
	// observations for 6 coefficients.
	values, forecastErr := model.Forecast(tableOf(randomWalk(9, 3)...))
	suite.Error(forecastErr)
	suite.True(errors.IsInsufficientDataError(forecastErr))
	suite.Empty(values)
}

func (suite *AutoregressiveTestSuite) TestForecastIsDeterministic() {
	table := tableOf(randomWalk(150, 4)...)

	first, err := NewAutoregressive(5, 15)
	suite.NoError(err)
	second, err := NewAutoregressive(5, 15)
	suite.NoError(err)

	valuesA, errA := first.Forecast(table)
	suite.NoError(errA)
	valuesB, errB := second.Forecast(table)
	suite.NoError(errB)

	suite.Equal(valuesA, valuesB)
}
