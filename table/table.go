// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Table is the tabular value produced by wrapped functions and persisted by
// the version store. Cells are strings; codecs decide how (or whether) to
// type them on the way out.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty Table with the given column names.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds one row. The cell count must match the column count.
func (t *Table) Append(cells ...string) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.Columns))
	}
	t.Rows = append(t.Rows, cells)
	return nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// Equal reports whether two tables have the same columns and the same cells
// in the same order. A nil row set and an empty one compare equal.
func (t *Table) Equal(o *Table) bool {
	if o == nil {
		return false
	}
	if len(t.Columns) != len(o.Columns) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i, c := range t.Columns {
		if o.Columns[i] != c {
			return false
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(o.Rows[i]) {
			return false
		}
		for j, cell := range row {
			if o.Rows[i][j] != cell {
				return false
			}
		}
	}
	return true
}

// FromJSON builds a Table from a JSON array of flat objects. Columns are
// taken from the first object in document order; keys missing from later
// objects become empty cells.
func FromJSON(data []byte) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON input")
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a JSON array of objects")
	}

	var t *Table
	var ferr error
	parsed.ForEach(func(_, row gjson.Result) bool {
		if !row.IsObject() {
			ferr = fmt.Errorf("expected a JSON object, got: %s", row.Type)
			return false
		}

		values := map[string]string{}
		row.ForEach(func(k, v gjson.Result) bool {
			values[k.String()] = v.String()
			return true
		})

		// The first object defines the column set, in document order.
		if t == nil {
			var cols []string
			row.ForEach(func(k, _ gjson.Result) bool {
				cols = append(cols, k.String())
				return true
			})
			t = New(cols...)
		}

		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cells[i] = values[c]
		}
		t.Rows = append(t.Rows, cells)
		return true
	})

	if ferr != nil {
		return nil, ferr
	}
	if t == nil {
		return nil, fmt.Errorf("empty JSON array, cannot infer columns")
	}
	return t, nil
}
