package table

import (
	"bufio"
	"bytes"
	"io"

	"github.com/wrycode/tcmd/internal/exitcode"
	"github.com/wrycode/tcmd/internal/scanner"
)

// Load reads a delimited table from r. delims[0] is the canonical
// delimiter; any later bytes are alternates normalized to it before a line
// is split into cells. After every line is read, the table is shape
// normalized: short rows are padded with empty cells out to the widest
// row, then trailing all-empty columns (other than column 0) are trimmed.
func Load(r io.Reader, delims []byte) (*Table, error) {
	if len(delims) == 0 {
		return nil, exitcode.New(exitcode.InvalidValue, "no delimiters supplied")
	}
	primary := delims[0]
	t := New(primary)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSuffix(sc.Bytes(), []byte("\r"))
		normalized := normalizeDelimiters(line, delims)

		idx := t.AppendRow()
		t.Rows[idx] = splitCells(normalized, primary)
	}
	if err := sc.Err(); err != nil {
		return nil, exitcode.Wrap(exitcode.FileError, err)
	}

	normalizeShape(t)
	return t, nil
}

// normalizeDelimiters rewrites every non-quoted, non-escaped occurrence of
// an alternate delimiter to the primary one.
func normalizeDelimiters(line []byte, delims []byte) []byte {
	primary := delims[0]
	alts := delims[1:]
	if len(alts) == 0 {
		return line
	}

	out := make([]byte, len(line))
	copy(out, line)
	scanner.Walk(line, func(i int, b byte, inQuote, escaped bool) bool {
		if inQuote || escaped {
			return true
		}
		for _, alt := range alts {
			if b == alt {
				out[i] = primary
				return true
			}
		}
		return true
	})
	return out
}

func splitCells(line []byte, primary byte) []string {
	n := scanner.Count(line, primary, false) + 1
	cells := make([]string, n)
	for i := 0; i < n; i++ {
		seg, _ := scanner.Split(line, primary, i, false)
		cells[i] = string(seg)
	}
	return cells
}

// normalizeShape pads every row to the table's widest row, then trims
// trailing columns (from the right, stopping at the first that isn't
// entirely empty, never touching column 0).
func normalizeShape(t *Table) {
	width := 0
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range t.Rows {
		for len(row) < width {
			row = append(row, "")
		}
		t.Rows[i] = row
	}

	for col := width - 1; col >= 1; col-- {
		allEmpty := true
		for _, row := range t.Rows {
			if row[col] != "" {
				allEmpty = false
				break
			}
		}
		if !allEmpty {
			break
		}
		for i, row := range t.Rows {
			t.Rows[i] = append(row[:col], row[col+1:]...)
		}
	}
}
