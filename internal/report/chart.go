package report

import (
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

const (
	rsiOverboughtLevel = 70
	rsiOversoldLevel   = 30
)

// PriceChartColumns names the optional derived columns overlaid on the
// price chart. An absent column is simply left off the chart.
type PriceChartColumns struct {
	MovingAverage  string
	BollingerUpper string
	BollingerLower string
}

// RenderPriceChart writes an HTML line chart of the closing price to path,
// overlaying the moving average when present and the Bollinger bands when
// both bands are present.
func RenderPriceChart(table *types.Table, columns PriceChartColumns, title string, path string) error {
	line := newLineChart(title, "Price")

	line.SetXAxis(dateLabels(table)).
		AddSeries("Close", lineData(table.Closes()))

	if ma, err := table.Column(columns.MovingAverage).Take(); err == nil {
		line.AddSeries(ma.Name, lineData(ma.Values))
	}

	upper := table.Column(columns.BollingerUpper)
	lower := table.Column(columns.BollingerLower)

	if upper.IsSome() && lower.IsSome() {
		line.AddSeries(upper.Unwrap().Name, lineData(upper.Unwrap().Values))
		line.AddSeries(lower.Unwrap().Name, lineData(lower.Unwrap().Values))
	}

	return renderToFile(line, path)
}

// RenderRSIChart writes an HTML line chart of the RSI column to path, with
// horizontal reference lines at the overbought (70) and oversold (30)
// levels. A table without the column is an ErrCodeDataNotFound condition.
func RenderRSIChart(table *types.Table, column string, title string, path string) error {
	rsi, err := table.Column(column).Take()
	if err != nil {
		return errors.Newf(errors.ErrCodeDataNotFound, "column %q not present in table", column)
	}

	line := newLineChart(title, "RSI")

	line.SetXAxis(dateLabels(table)).
		AddSeries(rsi.Name, lineData(rsi.Values)).
		SetSeriesOptions(
			charts.WithMarkLineNameYAxisItemOpts(
				opts.MarkLineNameYAxisItem{Name: "Overbought", YAxis: rsiOverboughtLevel},
				opts.MarkLineNameYAxisItem{Name: "Oversold", YAxis: rsiOversoldLevel},
			),
		)

	return renderToFile(line, path)
}

func newLineChart(title string, yAxisName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName, Scale: opts.Bool(true)}),
	)

	return line
}

func renderToFile(line *charts.Line, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeChartRenderFailed, err, "failed to create %s", path)
	}
	defer file.Close()

	if err := line.Render(file); err != nil {
		return errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to render chart", err)
	}

	return nil
}

func dateLabels(table *types.Table) []string {
	labels := make([]string, table.Len())
	for i, bar := range table.Bars {
		labels[i] = bar.Time.Format(dateLayout)
	}

	return labels
}

// lineData converts a column to chart points. NaN has no JSON encoding, so
// undefined rows become nil values that echarts renders as gaps.
func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			data[i] = opts.LineData{Value: nil}
			continue
		}

		data[i] = opts.LineData{Value: v}
	}

	return data
}
