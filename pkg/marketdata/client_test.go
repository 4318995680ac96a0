package marketdata

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// fakeProvider serves canned bars without touching the network.
type fakeProvider struct {
	bars []types.Bar
	err  error
}

func (f *fakeProvider) DailyBars(_ context.Context, _ string, _, _ time.Time) ([]types.Bar, error) {
	return f.bars, f.err
}

func validParams() FetchParams {
	return FetchParams{
		Ticker:    "AAPL",
		StartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *ClientTestSuite) TestNewClientRequiresProviderType() {
	_, err := NewClient(ClientConfig{})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ClientTestSuite) TestNewClientPolygonRequiresAPIKey() {
	_, err := NewClient(ClientConfig{ProviderType: provider.ProviderPolygon})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ClientTestSuite) TestNewClientBinance() {
	client, err := NewClient(ClientConfig{ProviderType: provider.ProviderBinance})
	suite.NoError(err)
	suite.NotNil(client)
}

func (suite *ClientTestSuite) TestFetchValidatesParams() {
	client := NewClientWithProvider(&fakeProvider{})

	_, err := client.Fetch(context.Background(), FetchParams{})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	params := validParams()
	params.EndDate = params.StartDate.AddDate(-1, 0, 0)
	_, err = client.Fetch(context.Background(), params)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *ClientTestSuite) TestFetchBuildsTable() {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := []types.Bar{
		{Time: start, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 100},
		{Time: start.AddDate(0, 0, 1), Open: 1.5, High: 2.5, Low: 1, Close: 2, Volume: 150},
	}

	client := NewClientWithProvider(&fakeProvider{bars: bars})

	table, err := client.Fetch(context.Background(), validParams())
	suite.NoError(err)
	suite.Equal(2, table.Len())
	suite.Equal([]float64{1.5, 2}, table.Closes())
}

func (suite *ClientTestSuite) TestFetchEmptyRangeYieldsEmptyTable() {
	client := NewClientWithProvider(&fakeProvider{bars: nil})

	table, err := client.Fetch(context.Background(), validParams())
	suite.NoError(err)
	suite.Equal(0, table.Len())
}

func (suite *ClientTestSuite) TestFetchPropagatesProviderFailure() {
	client := NewClientWithProvider(&fakeProvider{err: fmt.Errorf("connection refused")})

	_, err := client.Fetch(context.Background(), validParams())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeFetchFailed))
	suite.Contains(err.Error(), "connection refused")
}
