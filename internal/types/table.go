package types

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// Series is a derived column aligned row-for-row with the table's bars.
// NaN marks rows where the value is undefined (for example the leading
// rows of a trailing-window calculation).
type Series struct {
	Name   string
	Values []float64
}

// Table is the price table flowing through the analysis pipeline: a
// chronological sequence of daily bars plus the derived columns appended
// by the indicator calculators. Bars are ordered by date, ascending and
// unique; derived columns keep their insertion order.
type Table struct {
	Bars    []Bar
	Derived []Series
}

// NewTable creates a table from a chronological slice of bars.
func NewTable(bars []Bar) *Table {
	return &Table{
		Bars:    bars,
		Derived: nil,
	}
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Bars)
}

// Closes returns the closing price column.
func (t *Table) Closes() []float64 {
	closes := make([]float64, len(t.Bars))
	for i, bar := range t.Bars {
		closes[i] = bar.Close
	}

	return closes
}

// AddSeries appends a derived column to the table. The series must have
// exactly one value per row, and its name must not collide with an
// existing column: a column, once written, is never overwritten.
func (t *Table) AddSeries(series Series) error {
	if len(series.Values) != len(t.Bars) {
		return errors.Newf(errors.ErrCodeColumnLengthMismatch, "series %q has %d values for %d rows", series.Name, len(series.Values), len(t.Bars))
	}

	if t.Column(series.Name).IsSome() {
		return errors.Newf(errors.ErrCodeColumnAlreadyExists, "column %q already exists", series.Name)
	}

	t.Derived = append(t.Derived, series)

	return nil
}

// Column looks up a derived column by name. Presence is an explicit
// optional value so callers can test for a column before using it.
func (t *Table) Column(name string) optional.Option[Series] {
	for _, series := range t.Derived {
		if series.Name == name {
			return optional.Some(series)
		}
	}

	return optional.None[Series]()
}

// ColumnNames returns the names of all derived columns in insertion order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Derived))
	for i, series := range t.Derived {
		names[i] = series.Name
	}

	return names
}
