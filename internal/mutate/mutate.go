// Package mutate implements the row/column mutation engine: irow, arow,
// drow, icol, acol, dcol, each acting relative to the interpreter's current
// selection rectangle. None of these change the selection rectangle itself
// — later commands keep seeing the same indices even if the table has
// shifted underneath them.
package mutate

import (
	"github.com/wrycode/tcmd/internal/selector"
	"github.com/wrycode/tcmd/internal/table"
)

// IRow inserts an empty row at r1, shifting rows at or after it downward.
func IRow(t *table.Table, r selector.Rect) {
	idx := r.R1
	if idx > t.NumRows() {
		idx = t.NumRows()
	}
	t.InsertEmptyRow(idx)
}

// ARow appends after r2 if r2 is the last row, otherwise inserts right
// after it.
func ARow(t *table.Table, r selector.Rect) {
	idx := r.R2 + 1
	if r.R2 >= t.NumRows()-1 {
		idx = t.NumRows()
	}
	t.InsertEmptyRow(idx)
}

// DRow deletes rows r1..r2 inclusive, clamped to the last row.
func DRow(t *table.Table, r selector.Rect) {
	r1, r2 := r.R1, r.R2
	if r2 > t.NumRows()-1 {
		r2 = t.NumRows() - 1
	}
	if r1 > r2 {
		return
	}
	t.DeleteRows(r1, r2)
}

// ICol inserts an empty column at c1 in every row.
func ICol(t *table.Table, r selector.Rect) {
	idx := r.C1
	if idx > t.NumCols() {
		idx = t.NumCols()
	}
	t.InsertEmptyCol(idx)
}

// ACol appends a column after c2 if c2 is the last column, otherwise
// inserts right after it.
func ACol(t *table.Table, r selector.Rect) {
	idx := r.C2 + 1
	if r.C2 >= t.NumCols()-1 {
		idx = t.NumCols()
	}
	t.InsertEmptyCol(idx)
}

// DCol deletes columns c1..c2 inclusive from every row, clamped to the
// last column.
func DCol(t *table.Table, r selector.Rect) {
	c1, c2 := r.C1, r.C2
	if c2 > t.NumCols()-1 {
		c2 = t.NumCols() - 1
	}
	if c1 > c2 {
		return
	}
	t.DeleteCols(c1, c2)
}
