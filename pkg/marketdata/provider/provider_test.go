package provider

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

type ProviderTestSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}

func (suite *ProviderTestSuite) TestNewMarketDataProviderPolygon() {
	p, err := NewMarketDataProvider(ProviderPolygon, "test-api-key")
	suite.NoError(err)
	suite.NotNil(p)
}

func (suite *ProviderTestSuite) TestNewMarketDataProviderPolygonMissingKey() {
	_, err := NewMarketDataProvider(ProviderPolygon, "")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ProviderTestSuite) TestNewMarketDataProviderPolygonNonStringConfig() {
	_, err := NewMarketDataProvider(ProviderPolygon, 42)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ProviderTestSuite) TestNewMarketDataProviderBinance() {
	p, err := NewMarketDataProvider(ProviderBinance, nil)
	suite.NoError(err)
	suite.NotNil(p)
}

func (suite *ProviderTestSuite) TestNewMarketDataProviderUnsupported() {
	_, err := NewMarketDataProvider(ProviderType("yahoo"), nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeProviderUnsupported))
	suite.Contains(err.Error(), "unsupported market data provider")
}
