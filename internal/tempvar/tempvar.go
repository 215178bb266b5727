// Package tempvar implements the ten numbered temporary-variable slots
// addressed as "_0".."_9": def copies a single cell into a slot, use
// writes a slot back into every cell of a selection, and inc bumps a
// slot's numeric value in place.
package tempvar

import (
	"strconv"
	"strings"

	"github.com/wrycode/tcmd/internal/exitcode"
	"github.com/wrycode/tcmd/internal/numfmt"
	"github.com/wrycode/tcmd/internal/selector"
	"github.com/wrycode/tcmd/internal/table"
)

// Store holds the ten slots. The zero value is ten empty slots, matching
// the documented initial state.
type Store struct {
	slots [10]string
}

// Slot parses an argument of the form "_N" (N in 0..9) into its index.
func Slot(arg string) (int, error) {
	if len(arg) < 2 || arg[0] != '_' {
		return 0, exitcode.New(exitcode.InvalidArgument, "temp-var argument %q must look like _N", arg)
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg[1:]))
	if err != nil || n < 0 || n > 9 {
		return 0, exitcode.New(exitcode.InvalidArgument, "temp-var index %q out of range 0..9", arg[1:])
	}
	return n, nil
}

// Def copies the content of the current selection's single cell into slot
// n. r must be exactly one cell; anything larger is a command error. The
// cell reference is clamped to the table's current dimensions, per §7's
// "commands that dereference out-of-range cells clamp at the boundary" —
// row/column operations never adjust the selection rectangle itself, so a
// stale single-cell selection can point past a table shrunk by drow/dcol.
func (s *Store) Def(t *table.Table, r selector.Rect, n int) error {
	if r.R1 != r.R2 || r.C1 != r.C2 {
		return exitcode.New(exitcode.MalformedCommand, "def: selection is not a single cell")
	}
	if t.NumRows() == 0 || t.NumCols() == 0 {
		s.slots[n] = ""
		return nil
	}
	s.slots[n] = t.Cell(clampIndex(r.R1, t.NumRows()), clampIndex(r.C1, t.NumCols()))
	return nil
}

// Use writes slot n's value into every cell of r. An empty (never-def'd,
// or def'd from an empty cell) slot is a silent no-op.
func (s *Store) Use(t *table.Table, r selector.Rect, n int) {
	if s.slots[n] == "" {
		return
	}
	r1, c1, r2, c2 := clampRect(r, t.NumRows(), t.NumCols())
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			t.SetCell(row, col, s.slots[n])
		}
	}
}

// Inc bumps slot n's numeric value by one, writing back in integer form
// when the result has no fractional part and in general form otherwise.
// An empty or non-numeric slot becomes "1".
func (s *Store) Inc(n int) {
	v, ok := numfmt.Parse(s.slots[n])
	if !ok {
		s.slots[n] = "1"
		return
	}
	s.slots[n] = numfmt.Format(v + 1)
}

func clampRect(r selector.Rect, rows, cols int) (r1, c1, r2, c2 int) {
	r1, c1, r2, c2 = r.R1, r.C1, r.R2, r.C2
	if r2 >= rows {
		r2 = rows - 1
	}
	if c2 >= cols {
		c2 = cols - 1
	}
	if r1 > r2 || c1 > c2 {
		return 0, 0, -1, -1
	}
	return r1, c1, r2, c2
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return i
}
