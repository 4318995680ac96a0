package report

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/rxtech-lab/argo-analysis/internal/types"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

const dateLayout = "2006-01-02"

// fixedColumns are the original table columns preceding the derived ones.
var fixedColumns = []string{"date", "open", "high", "low", "close", "volume"}

// WriteCSV persists the full enriched table to a comma-delimited file: one
// row per trading day, date first, then the original OHLCV columns, then
// every derived column in insertion order. NaN serializes as an empty field.
func WriteCSV(table *types.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to create %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := append(append([]string{}, fixedColumns...), table.ColumnNames()...)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to write header", err)
	}

	for i, bar := range table.Bars {
		record := []string{
			bar.Time.Format(dateLayout),
			formatValue(bar.Open),
			formatValue(bar.High),
			formatValue(bar.Low),
			formatValue(bar.Close),
			formatValue(bar.Volume),
		}

		for _, series := range table.Derived {
			record = append(record, formatValue(series.Values[i]))
		}

		if err := writer.Write(record); err != nil {
			return errors.Wrap(errors.ErrCodeExportFailed, "failed to write row", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to flush csv", err)
	}

	return nil
}

// LoadCSV reads a table previously written by WriteCSV, including all
// derived columns. Empty fields load as NaN.
func LoadCSV(path string) (*types.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeImportFailed, err, "failed to open %s", path)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImportFailed, "failed to read csv", err)
	}

	if len(records) == 0 {
		return nil, errors.Newf(errors.ErrCodeImportFailed, "%s has no header row", path)
	}

	header := records[0]
	if len(header) < len(fixedColumns) {
		return nil, errors.Newf(errors.ErrCodeImportFailed, "%s has %d columns, expected at least %d", path, len(header), len(fixedColumns))
	}

	rows := records[1:]
	bars := make([]types.Bar, 0, len(rows))
	derived := make([]types.Series, len(header)-len(fixedColumns))

	for i := range derived {
		derived[i] = types.Series{
			Name:   header[len(fixedColumns)+i],
			Values: make([]float64, 0, len(rows)),
		}
	}

	for _, record := range rows {
		if len(record) != len(header) {
			return nil, errors.Newf(errors.ErrCodeImportFailed, "row has %d fields, header has %d", len(record), len(header))
		}

		date, err := time.Parse(dateLayout, record[0])
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeImportFailed, err, "invalid date %q", record[0])
		}

		bars = append(bars, types.Bar{
			Time:   date,
			Open:   parseValue(record[1]),
			High:   parseValue(record[2]),
			Low:    parseValue(record[3]),
			Close:  parseValue(record[4]),
			Volume: parseValue(record[5]),
		})

		for i := range derived {
			derived[i].Values = append(derived[i].Values, parseValue(record[len(fixedColumns)+i]))
		}
	}

	table := types.NewTable(bars)
	for _, series := range derived {
		if err := table.AddSeries(series); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseValue(s string) float64 {
	if s == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return v
}
