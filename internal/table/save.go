package table

import (
	"bufio"
	"io"

	"github.com/wrycode/tcmd/internal/exitcode"
)

// Save writes t to w, one row per '\n'-terminated line, cells separated by
// t.Delimiter. No unquoting or re-escaping is performed — cell content is
// written verbatim.
func Save(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				if err := bw.WriteByte(t.Delimiter); err != nil {
					return exitcode.Wrap(exitcode.FileError, err)
				}
			}
			if _, err := bw.WriteString(cell); err != nil {
				return exitcode.Wrap(exitcode.FileError, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return exitcode.Wrap(exitcode.FileError, err)
		}
	}
	return exitcode.Wrap(exitcode.FileError, bw.Flush())
}
