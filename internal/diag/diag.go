// Package diag prints the pipeline's non-fatal diagnostics: the selector
// warnings documented in spec.md §7 (find with no match, min/max with no
// numeric cell) are reported to standard output and never abort the run.
package diag

import (
	"io"

	"github.com/fatih/color"
)

// Warnf writes a selector warning to w in yellow, falling back to plain
// text automatically when standard output is not a terminal (color.NoColor
// handles the detection, and it inspects os.Stdout, not w).
func Warnf(w io.Writer, format string, args ...any) {
	c := color.New(color.FgYellow)
	c.Fprintf(w, format+"\n", args...)
}
