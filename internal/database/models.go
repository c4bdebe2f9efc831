package database

import "time"

// Column describes one column of a result set.
type Column struct {
	Name     string
	Position int
	DataType string
}

// Row is one result row, aligned positionally with the result's columns.
type Row []Value

// ResultSet holds the result of a single query execution.
//
// A nil Columns slice means the driver produced no column metadata at all.
// A non-nil empty slice means the result was described but has no columns.
type ResultSet struct {
	Columns  []Column
	Rows     []Row
	Duration time.Duration
}

// ColumnNames returns the names of the result's columns in driver order.
func (r *ResultSet) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

// HasMetadata reports whether the driver described the result's columns.
func (r *ResultSet) HasMetadata() bool {
	return r.Columns != nil
}
