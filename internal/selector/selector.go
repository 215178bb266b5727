// Package selector implements the selector grammar: a small recursive
// parser over bracketed selector tokens that maintains the interpreter's
// current selection rectangle and its saved counterpart, plus the
// find/min/max scans that narrow the current selection by content.
package selector

import (
	"strconv"
	"strings"

	"github.com/wrycode/tcmd/internal/exitcode"
	"github.com/wrycode/tcmd/internal/numfmt"
	"github.com/wrycode/tcmd/internal/table"
)

// Rect is a rectangular selection, inclusive on both ends and always
// non-empty once the table has at least one row and column.
type Rect struct {
	R1, C1, R2, C2 int
}

// Evaluator holds the two rectangles a command stream can address: the
// current selection C and the saved selection S. Both start at (0,0,0,0),
// the zero value.
type Evaluator struct {
	Cur   Rect
	Saved Rect
}

// New returns an Evaluator with both rectangles at their initial (0,0,0,0)
// value.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval dispatches a single selector token (the full "[...]" string,
// brackets included) against t, updating Cur or Saved. It returns a
// non-empty warning string for the two documented non-fatal diagnostics
// (find with no match, min/max with no numeric cell); those leave Cur
// unchanged rather than returning an error.
func (e *Evaluator) Eval(t *table.Table, token string) (warning string, err error) {
	content := strings.TrimSpace(token)
	content = strings.TrimPrefix(content, "[")
	content = strings.TrimSuffix(content, "]")
	content = strings.TrimSpace(content)

	switch {
	case content == "_":
		e.Cur = e.Saved
		return "", nil
	case content == "set":
		e.Saved = e.Cur
		return "", nil
	case content == "min":
		return e.extremum(t, false)
	case content == "max":
		return e.extremum(t, true)
	case strings.HasPrefix(content, "find "):
		return e.find(t, content[len("find "):])
	case content == "find":
		return e.find(t, "")
	}

	rect, err := parseRect(content, t.NumRows(), t.NumCols())
	if err != nil {
		return "", err
	}
	e.Cur = rect
	return "", nil
}

// find scans Cur in row-major order for the first cell whose content has
// str as a literal prefix. On a match Cur shrinks to that single cell; on
// no match Cur is left unchanged and a warning is returned.
func (e *Evaluator) find(t *table.Table, str string) (string, error) {
	r1, c1, r2, c2 := clamp(e.Cur, t.NumRows(), t.NumCols())
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			if strings.HasPrefix(t.Cell(r, c), str) {
				e.Cur = Rect{r, c, r, c}
				return "", nil
			}
		}
	}
	return "find: no cell starts with " + strconv.Quote(str), nil
}

// extremum implements min (max=false) and max (max=true): collapse Cur to
// the single cell whose content parses as numeric and is minimal/maximal,
// ties broken by row-major order. A matching pair of surrounding quotes is
// trimmed before parsing. No numeric cell leaves Cur unchanged.
func (e *Evaluator) extremum(t *table.Table, max bool) (string, error) {
	r1, c1, r2, c2 := clamp(e.Cur, t.NumRows(), t.NumCols())

	found := false
	var bestR, bestC int
	var bestV float64
	for r := r1; r <= r2; r++ {
		for c := c1; c <= c2; c++ {
			v, ok := numfmt.Parse(unquote(t.Cell(r, c)))
			if !ok {
				continue
			}
			if !found || (max && v > bestV) || (!max && v < bestV) {
				found = true
				bestR, bestC, bestV = r, c, v
			}
		}
	}
	if !found {
		name := "min"
		if max {
			name = "max"
		}
		return name + ": no cell in the selection parses as numeric", nil
	}
	e.Cur = Rect{bestR, bestC, bestR, bestC}
	return "", nil
}

// unquote trims one matching pair of surrounding single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// clamp bounds a rectangle's inner-loop endpoints to the table's current
// dimensions without altering the rectangle itself.
func clamp(r Rect, rows, cols int) (r1, c1, r2, c2 int) {
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

// parseRect parses the non-keyword selector forms: a 2-component or
// 4-component comma-separated list of numeric/'_'/'-' tokens.
func parseRect(content string, rows, cols int) (Rect, error) {
	parts := strings.Split(content, ",")
	switch len(parts) {
	case 2:
		return parseTwoPart(parts[0], parts[1], rows, cols)
	case 4:
		return parseFourPart(parts, rows, cols)
	default:
		return Rect{}, exitcode.New(exitcode.MalformedSelector, "selector %q: expected 2 or 4 comma-separated components", content)
	}
}

type token struct {
	kind  byte // 'n' numeric, 'u' underscore, 'd' dash
	value int  // 1-based, only valid when kind == 'n'
}

func classify(s string) (token, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "_":
		return token{kind: 'u'}, true
	case "-":
		return token{kind: 'd'}, true
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return token{}, false
		}
		return token{kind: 'n', value: n}, true
	}
}

func parseTwoPart(aRaw, bRaw string, rows, cols int) (Rect, error) {
	a, ok := classify(aRaw)
	if !ok {
		return Rect{}, exitcode.New(exitcode.MalformedSelector, "selector: invalid row component %q", aRaw)
	}
	b, ok := classify(bRaw)
	if !ok {
		return Rect{}, exitcode.New(exitcode.MalformedSelector, "selector: invalid column component %q", bRaw)
	}

	switch {
	case a.kind == 'n' && b.kind == 'n':
		r, err := rowIndex(a.value, rows)
		if err != nil {
			return Rect{}, err
		}
		c, err := colIndex(b.value, cols)
		if err != nil {
			return Rect{}, err
		}
		return Rect{r, c, r, c}, nil

	case a.kind == 'n' && b.kind == 'u':
		r, err := rowIndex(a.value, rows)
		if err != nil {
			return Rect{}, err
		}
		return Rect{r, 0, r, cols - 1}, nil

	case a.kind == 'n' && b.kind == 'd':
		r, err := rowIndex(a.value, rows)
		if err != nil {
			return Rect{}, err
		}
		return Rect{r, cols - 1, r, cols - 1}, nil

	case a.kind == 'u' && b.kind == 'n':
		c, err := colIndex(b.value, cols)
		if err != nil {
			return Rect{}, err
		}
		return Rect{0, c, rows - 1, c}, nil

	case a.kind == 'd' && b.kind == 'n':
		c, err := colIndex(b.value, cols)
		if err != nil {
			return Rect{}, err
		}
		return Rect{rows - 1, c, rows - 1, c}, nil

	case a.kind == 'u' && b.kind == 'u':
		return Rect{0, 0, rows - 1, cols - 1}, nil

	case a.kind == 'd' && b.kind == 'd':
		return Rect{rows - 1, cols - 1, rows - 1, cols - 1}, nil

	case a.kind == 'u' && b.kind == 'd':
		return Rect{0, cols - 1, rows - 1, cols - 1}, nil

	case a.kind == 'd' && b.kind == 'u':
		return Rect{rows - 1, 0, rows - 1, cols - 1}, nil

	default:
		return Rect{}, exitcode.New(exitcode.MalformedSelector, "selector: unsupported component combination")
	}
}

func parseFourPart(parts []string, rows, cols int) (Rect, error) {
	toks := make([]token, 4)
	for i, p := range parts {
		t, ok := classify(p)
		if !ok || t.kind == 'u' {
			return Rect{}, exitcode.New(exitcode.MalformedSelector, "selector: component %q invalid in a 4-part rectangle (numeric or '-' only)", p)
		}
		toks[i] = t
	}

	r1, err := resolveIndex(toks[0], rows)
	if err != nil {
		return Rect{}, err
	}
	c1, err := resolveIndex(toks[1], cols)
	if err != nil {
		return Rect{}, err
	}
	r2, err := resolveIndex(toks[2], rows)
	if err != nil {
		return Rect{}, err
	}
	c2, err := resolveIndex(toks[3], cols)
	if err != nil {
		return Rect{}, err
	}

	if r1 > r2 {
		return Rect{}, exitcode.New(exitcode.MalformedSelector, "selector: r1=%d > r2=%d", r1+1, r2+1)
	}
	if c1 > c2 {
		return Rect{}, exitcode.New(exitcode.MalformedSelector, "selector: c1=%d > c2=%d", c1+1, c2+1)
	}
	return Rect{r1, c1, r2, c2}, nil
}

func resolveIndex(t token, n int) (int, error) {
	if t.kind == 'd' {
		return n - 1, nil
	}
	return rowIndex(t.value, n)
}

func rowIndex(oneBased, rows int) (int, error) {
	if oneBased < 1 || oneBased > rows {
		return 0, exitcode.New(exitcode.MalformedSelector, "selector: row %d out of range 1..%d", oneBased, rows)
	}
	return oneBased - 1, nil
}

func colIndex(oneBased, cols int) (int, error) {
	if oneBased < 1 || oneBased > cols {
		return 0, exitcode.New(exitcode.MalformedSelector, "selector: column %d out of range 1..%d", oneBased, cols)
	}
	return oneBased - 1, nil
}
