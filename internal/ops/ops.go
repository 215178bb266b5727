// Package ops implements the data operators that act on every cell within
// the current selection: set, clear, swap, sum, avg, count and len.
package ops

import (
	"strconv"
	"strings"

	"github.com/wrycode/tcmd/internal/exitcode"
	"github.com/wrycode/tcmd/internal/numfmt"
	"github.com/wrycode/tcmd/internal/selector"
	"github.com/wrycode/tcmd/internal/table"
)

// Set writes value verbatim (no unquoting) into every cell of r.
func Set(t *table.Table, r selector.Rect, value string) {
	forEach(t, r, func(row, col int) {
		t.SetCell(row, col, value)
	})
}

// Clear writes the empty string into every cell of r.
func Clear(t *table.Table, r selector.Rect) {
	forEach(t, r, func(row, col int) {
		t.SetCell(row, col, "")
	})
}

// Swap exchanges contents between every cell of r (except the target
// itself) and the target cell named by arg, in row-major order. The swap
// is sequential: each exchange sees whatever the previous exchange left in
// the target, so the target ends up holding the original value of the
// last-visited cell, and each visited cell holds what the target carried
// just before it was visited.
func Swap(t *table.Table, r selector.Rect, arg string) error {
	tr, tc, err := parseTarget(arg, t.NumRows(), t.NumCols())
	if err != nil {
		return err
	}

	return forEachErr(t, r, func(row, col int) error {
		if row == tr && col == tc {
			return nil
		}
		a, b := t.Cell(row, col), t.Cell(tr, tc)
		t.SetCell(row, col, b)
		t.SetCell(tr, tc, a)
		return nil
	})
}

// Sum writes the sum of numeric-parseable cells in r to the target cell
// named by arg. The first non-numeric cell encountered aborts the scan and
// writes the literal "NaN" instead.
func Sum(t *table.Table, r selector.Rect, arg string) error {
	tr, tc, err := parseTarget(arg, t.NumRows(), t.NumCols())
	if err != nil {
		return err
	}

	total, _, ok := accumulate(t, r)
	if !ok {
		t.SetCell(tr, tc, "NaN")
		return nil
	}
	t.SetCell(tr, tc, numfmt.Format(total))
	return nil
}

// Avg writes the average of numeric-parseable cells in r to the target
// cell named by arg, under the same abort-on-non-numeric rule as Sum.
func Avg(t *table.Table, r selector.Rect, arg string) error {
	tr, tc, err := parseTarget(arg, t.NumRows(), t.NumCols())
	if err != nil {
		return err
	}

	total, n, ok := accumulate(t, r)
	if !ok || n == 0 {
		t.SetCell(tr, tc, "NaN")
		return nil
	}
	t.SetCell(tr, tc, numfmt.Format(total/float64(n)))
	return nil
}

// Count writes the number of non-empty cells in r to the target cell
// named by arg.
func Count(t *table.Table, r selector.Rect, arg string) error {
	tr, tc, err := parseTarget(arg, t.NumRows(), t.NumCols())
	if err != nil {
		return err
	}

	n := 0
	forEach(t, r, func(row, col int) {
		if t.Cell(row, col) != "" {
			n++
		}
	})
	t.SetCell(tr, tc, numfmt.Format(float64(n)))
	return nil
}

// Len writes the byte length of r's bottom-right cell's content to the
// target cell named by arg.
func Len(t *table.Table, r selector.Rect, arg string) error {
	tr, tc, err := parseTarget(arg, t.NumRows(), t.NumCols())
	if err != nil {
		return err
	}

	br, bc := clampIndex(r.R2, t.NumRows()), clampIndex(r.C2, t.NumCols())
	n := len(t.Cell(br, bc))
	t.SetCell(tr, tc, numfmt.Format(float64(n)))
	return nil
}

// accumulate walks r in row-major order, summing numeric-parseable cells.
// It stops and reports ok=false at the first cell that fails to parse.
func accumulate(t *table.Table, r selector.Rect) (total float64, n int, ok bool) {
	r1, c1, r2, c2 := clampRect(r, t.NumRows(), t.NumCols())
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			v, parsed := numfmt.Parse(t.Cell(row, col))
			if !parsed {
				return total, n, false
			}
			total += v
			n++
		}
	}
	return total, n, true
}

func forEach(t *table.Table, r selector.Rect, fn func(row, col int)) {
	r1, c1, r2, c2 := clampRect(r, t.NumRows(), t.NumCols())
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			fn(row, col)
		}
	}
}

func forEachErr(t *table.Table, r selector.Rect, fn func(row, col int) error) error {
	r1, c1, r2, c2 := clampRect(r, t.NumRows(), t.NumCols())
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			if err := fn(row, col); err != nil {
				return err
			}
		}
	}
	return nil
}

// clampRect bounds a rectangle's inner-loop endpoints to the table's
// current dimensions without altering the rectangle itself.
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

// parseTarget parses a "[R,C]" argument: each component is either a
// positive 1-based integer or '-' meaning "last row"/"last column". The
// result is 0-based and validated against the table's current dimensions.
func parseTarget(arg string, rows, cols int) (r, c int, err error) {
	s := strings.TrimSpace(arg)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, exitcode.New(exitcode.MalformedCommand, "operator argument %q: expected [R,C]", arg)
	}

	r, err = resolveComponent(parts[0], rows)
	if err != nil {
		return 0, 0, err
	}
	c, err = resolveComponent(parts[1], cols)
	if err != nil {
		return 0, 0, err
	}
	return r, c, nil
}

func resolveComponent(raw string, n int) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "-" {
		return n - 1, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		return 0, exitcode.New(exitcode.InvalidArgument, "operator argument component %q out of range 1..%d", raw, n)
	}
	return v - 1, nil
}
