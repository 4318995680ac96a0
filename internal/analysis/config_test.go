package analysis

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-analysis/pkg/marketdata/provider"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestDefaultConfigIsValid() {
	config := DefaultConfig("AAPL",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.NoError(config.Validate())
	suite.Equal(50, config.MAWindow)
	suite.Equal(14, config.RSIWindow)
	suite.Equal(20, config.BollingerWindow)
	suite.Equal(30, config.Horizon)
	suite.Equal(0.8, config.TrainRatio)
}

func (suite *ConfigTestSuite) TestValidateRejectsBadDateRange() {
	config := DefaultConfig("AAPL",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.Error(config.Validate())
}

func (suite *ConfigTestSuite) TestValidateAllowsSingleDayRange() {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	config := DefaultConfig("AAPL", day, day)

	suite.NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestValidateRejectsMissingTicker() {
	config := DefaultConfig("",
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	suite.Error(config.Validate())
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	content := `ticker: MSFT
start_date: 2022-06-01T00:00:00Z
end_date: 2024-06-01T00:00:00Z
provider: binance
ma_window: 100
train_ratio: 0.7
output_dir: /tmp/report
`

	path := filepath.Join(suite.T().TempDir(), "config.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	suite.NoError(err)
	suite.Equal("MSFT", config.Ticker)
	suite.Equal(provider.ProviderBinance, config.Provider)
	suite.Equal(100, config.MAWindow)
	suite.Equal(0.7, config.TrainRatio)
	// Unset fields keep their defaults.
	suite.Equal(14, config.RSIWindow)
	suite.Equal(30, config.Horizon)
}

func (suite *ConfigTestSuite) TestLoadConfigMissingFile() {
	_, err := LoadConfig(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidContent() {
	path := filepath.Join(suite.T().TempDir(), "config.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("ticker: [unclosed"), 0644))

	_, err := LoadConfig(path)
	suite.Error(err)
}
