// Package table implements the owning 2-D cell store: rows of cells, grown
// and shrunk in place, with a rectangular-shape invariant that every
// mutation preserves when used as the mutate and ops packages prescribe.
package table

import "github.com/wrycode/tcmd/internal/exitcode"

// Table is an ordered sequence of rows plus the delimiter byte used when it
// is written back out. Rows own their cells; cells are plain strings, so
// there is nothing to deallocate explicitly and no sharing to worry about.
type Table struct {
	Rows      [][]string
	Delimiter byte
}

// New returns an empty table that writes back out using delim.
func New(delim byte) *Table {
	return &Table{Delimiter: delim}
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the width of the table, taken from its first row. A
// table with no rows has zero columns.
func (t *Table) NumCols() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Cell returns the content of cell (r, c).
func (t *Table) Cell(r, c int) string {
	return t.Rows[r][c]
}

// SetCell replaces the content of cell (r, c).
func (t *Table) SetCell(r, c int, s string) {
	t.Rows[r][c] = s
}

// AppendRow appends a new, empty row and returns its index.
func (t *Table) AppendRow() int {
	t.Rows = append(t.Rows, nil)
	return len(t.Rows) - 1
}

// AppendEmptyCell appends a single empty cell to row r.
func (t *Table) AppendEmptyCell(r int) {
	t.Rows[r] = append(t.Rows[r], "")
}

// InsertEmptyRow inserts a row of empty cells (sized to the table's current
// column count) at idx, shifting rows at or after idx downward. idx may
// equal NumRows() to append.
func (t *Table) InsertEmptyRow(idx int) {
	row := make([]string, t.NumCols())
	t.Rows = append(t.Rows, nil)
	copy(t.Rows[idx+1:], t.Rows[idx:])
	t.Rows[idx] = row
}

// DeleteRows removes rows r1..r2 inclusive.
func (t *Table) DeleteRows(r1, r2 int) {
	t.Rows = append(t.Rows[:r1], t.Rows[r2+1:]...)
}

// InsertEmptyCol inserts an empty column at idx in every row. idx may equal
// NumCols() to append.
func (t *Table) InsertEmptyCol(idx int) {
	for i, row := range t.Rows {
		row = append(row, "")
		copy(row[idx+1:], row[idx:])
		row[idx] = ""
		t.Rows[i] = row
	}
}

// DeleteCols removes columns c1..c2 inclusive from every row.
func (t *Table) DeleteCols(c1, c2 int) {
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:c1], row[c2+1:]...)
	}
}

// CheckRectangular reports whether every row has the same length.
func (t *Table) CheckRectangular() error {
	if len(t.Rows) == 0 {
		return nil
	}
	width := len(t.Rows[0])
	for i, row := range t.Rows {
		if len(row) != width {
			return exitcode.New(exitcode.InvariantViolated, "row %d has %d cells, want %d", i, len(row), width)
		}
	}
	return nil
}
