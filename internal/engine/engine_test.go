package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrycode/tcmd/internal/command"
	"github.com/wrycode/tcmd/internal/table"
)

// literalCommands splits a ';'-separated literal command string the same
// way command.Source does, without pulling in an afero.Fs dependency that
// these in-memory-table tests have no use for.
func literalCommands(spec string) []command.Command {
	if spec == "" {
		return nil
	}
	var raw []string
	for _, part := range strings.Split(spec, ";") {
		raw = append(raw, part)
	}
	return command.ParseAll(raw)
}

func TestScenarioS1MinimalRoundTrip(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("a,b,c\nd,e,f\n"), []byte(","))
	require.NoError(t, err)
	require.NoError(t, Run(tbl, nil, &bytes.Buffer{}))

	var buf bytes.Buffer
	require.NoError(t, table.Save(&buf, tbl))
	assert.Equal(t, "a,b,c\nd,e,f\n", buf.String())
}

func TestScenarioS2SelectorAndSet(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("1,2,3\n4,5,6\n"), []byte(","))
	require.NoError(t, err)

	cmds := literalCommands("[2,2];set X")
	require.NoError(t, Run(tbl, cmds, &bytes.Buffer{}))

	var buf bytes.Buffer
	require.NoError(t, table.Save(&buf, tbl))
	assert.Equal(t, "1,2,3\n4,X,6\n", buf.String())
}

func TestScenarioS3InsertColumn(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("a,b\nc,d\n"), []byte(","))
	require.NoError(t, err)

	cmds := literalCommands("[1,1];icol")
	require.NoError(t, Run(tbl, cmds, &bytes.Buffer{}))

	var buf bytes.Buffer
	require.NoError(t, table.Save(&buf, tbl))
	assert.Equal(t, ",a,b\n,c,d\n", buf.String())
}

func TestScenarioS4NumericSum(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("1,2,3\n4,5,6\n"), []byte(","))
	require.NoError(t, err)

	cmds := literalCommands("[1,1,2,3];sum [1,1]")
	require.NoError(t, Run(tbl, cmds, &bytes.Buffer{}))

	var buf bytes.Buffer
	require.NoError(t, table.Save(&buf, tbl))
	assert.Equal(t, "21,2,3\n4,5,6\n", buf.String())
}

func TestScenarioS5FindAndClear(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("foo,bar\nbaz,qux\n"), []byte(","))
	require.NoError(t, err)

	cmds := literalCommands("[_,_];[find ba];clear")
	require.NoError(t, Run(tbl, cmds, &bytes.Buffer{}))

	var buf bytes.Buffer
	require.NoError(t, table.Save(&buf, tbl))
	assert.Equal(t, "foo,\nbaz,qux\n", buf.String())
}

func TestScenarioS6TempVar(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("7,8\n9,0\n"), []byte(","))
	require.NoError(t, err)

	cmds := literalCommands("[1,1];def _0;[2,2];use _0")
	require.NoError(t, Run(tbl, cmds, &bytes.Buffer{}))

	var buf bytes.Buffer
	require.NoError(t, table.Save(&buf, tbl))
	assert.Equal(t, "7,8\n9,7\n", buf.String())
}

func TestRunStopsOnFirstFailingCommand(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("a,b\n"), []byte(","))
	require.NoError(t, err)

	cmds := literalCommands("set X;[99,99];set Y")
	err = Run(tbl, cmds, &bytes.Buffer{})
	assert.Error(t, err)

	// The command before the failure already ran.
	assert.Equal(t, "X", tbl.Cell(0, 0))
	// The command after the failure never ran; its target cell is untouched.
	assert.Equal(t, "b", tbl.Cell(0, 1))
}

func TestRunEmitsWarningWithoutAborting(t *testing.T) {
	tbl, err := table.Load(strings.NewReader("a,b\n"), []byte(","))
	require.NoError(t, err)

	var diagOut bytes.Buffer
	cmds := literalCommands("[_,_];[find zzz];set X")
	require.NoError(t, Run(tbl, cmds, &diagOut))

	assert.NotEmpty(t, diagOut.String())
	assert.Equal(t, "X", tbl.Cell(0, 0))
}

func TestDefAfterDrowDoesNotPanicOnStaleSelection(t *testing.T) {
	// drow never adjusts the current selection rectangle (§4.F), so a
	// selection pointing at the table's last row/col before the drow can
	// point past its end afterward; def must clamp rather than panic.
	tbl, err := table.Load(strings.NewReader("a,b,c\nd,e,f\ng,h,i\n"), []byte(","))
	require.NoError(t, err)

	cmds := literalCommands("[3,3];drow;def _0")
	require.NoError(t, Run(tbl, cmds, &bytes.Buffer{}))
	assert.Equal(t, 2, tbl.NumRows())
}
