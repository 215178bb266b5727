// Package engine drives the command-interpreter pipeline: it walks a
// tokenized command list in order, dispatching selector tokens to the
// selector evaluator and action commands to the mutation engine, the data
// operators, or the temp-variable store, against one shared table.
package engine

import (
	"io"

	"github.com/wrycode/tcmd/internal/command"
	"github.com/wrycode/tcmd/internal/diag"
	"github.com/wrycode/tcmd/internal/exitcode"
	"github.com/wrycode/tcmd/internal/mutate"
	"github.com/wrycode/tcmd/internal/ops"
	"github.com/wrycode/tcmd/internal/selector"
	"github.com/wrycode/tcmd/internal/table"
	"github.com/wrycode/tcmd/internal/tempvar"
)

// Run executes cmds against t in order, writing any selector diagnostics
// to diagOut. The first command that fails stops the run and its error is
// returned; the table is left exactly as the failed command found it plus
// whatever earlier commands already did — callers must not save the table
// to the output file when Run returns an error.
func Run(t *table.Table, cmds []command.Command, diagOut io.Writer) error {
	sel := selector.New()
	vars := &tempvar.Store{}

	for _, c := range cmds {
		if err := t.CheckRectangular(); err != nil {
			return err
		}

		if c.Selector {
			warning, err := sel.Eval(t, c.Function)
			if err != nil {
				return err
			}
			if warning != "" {
				diag.Warnf(diagOut, "%s", warning)
			}
			continue
		}

		if err := dispatch(t, sel, vars, c); err != nil {
			return err
		}

		if err := t.CheckRectangular(); err != nil {
			return err
		}
	}

	return nil
}

func dispatch(t *table.Table, sel *selector.Evaluator, vars *tempvar.Store, c command.Command) error {
	switch c.Function {
	case "irow":
		mutate.IRow(t, sel.Cur)
	case "arow":
		mutate.ARow(t, sel.Cur)
	case "drow":
		mutate.DRow(t, sel.Cur)
	case "icol":
		mutate.ICol(t, sel.Cur)
	case "acol":
		mutate.ACol(t, sel.Cur)
	case "dcol":
		mutate.DCol(t, sel.Cur)

	case "set":
		ops.Set(t, sel.Cur, c.Arg)
	case "clear":
		ops.Clear(t, sel.Cur)
	case "swap":
		return ops.Swap(t, sel.Cur, c.Arg)
	case "sum":
		return ops.Sum(t, sel.Cur, c.Arg)
	case "avg":
		return ops.Avg(t, sel.Cur, c.Arg)
	case "count":
		return ops.Count(t, sel.Cur, c.Arg)
	case "len":
		return ops.Len(t, sel.Cur, c.Arg)

	case "def":
		n, err := tempvar.Slot(c.Arg)
		if err != nil {
			return err
		}
		return vars.Def(t, sel.Cur, n)
	case "use":
		n, err := tempvar.Slot(c.Arg)
		if err != nil {
			return err
		}
		vars.Use(t, sel.Cur, n)
	case "inc":
		n, err := tempvar.Slot(c.Arg)
		if err != nil {
			return err
		}
		vars.Inc(n)

	default:
		return exitcode.New(exitcode.MalformedCommand, "unknown command %q", c.Function)
	}
	return nil
}
