package tempvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrycode/tcmd/internal/selector"
	"github.com/wrycode/tcmd/internal/table"
)

func TestSlotParsesIndex(t *testing.T) {
	n, err := Slot("_7")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestSlotRejectsOutOfRange(t *testing.T) {
	_, err := Slot("_10")
	assert.Error(t, err)
}

func TestSlotRejectsMissingSigil(t *testing.T) {
	_, err := Slot("7")
	assert.Error(t, err)
}

func TestDefRequiresSingleCell(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{{"a", "b"}}}
	s := &Store{}
	err := s.Def(tbl, selector.Rect{R1: 0, C1: 0, R2: 0, C2: 1}, 0)
	assert.Error(t, err)
}

func TestDefThenUseIsIdentity(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{{"7", "8"}, {"9", "0"}}}
	s := &Store{}
	require.NoError(t, s.Def(tbl, selector.Rect{R1: 0, C1: 0, R2: 0, C2: 0}, 0))
	s.Use(tbl, selector.Rect{R1: 1, C1: 1, R2: 1, C2: 1}, 0)
	assert.Equal(t, "7", tbl.Cell(1, 1))
}

func TestDefClampsStaleSelectionAfterTableShrinks(t *testing.T) {
	// A selection pointing at the last row/col of a 3x3 table, after a
	// drow has shrunk the table to 2 rows without touching the (unrelated)
	// selection rectangle — def must clamp rather than index out of range.
	tbl := &table.Table{Rows: [][]string{{"a", "b", "c"}, {"d", "e", "f"}}}
	s := &Store{}
	err := s.Def(tbl, selector.Rect{R1: 2, C1: 2, R2: 2, C2: 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, "f", s.slots[0])
}

func TestDefOnEmptyTableIsEmptySlot(t *testing.T) {
	tbl := &table.Table{}
	s := &Store{}
	err := s.Def(tbl, selector.Rect{R1: 0, C1: 0, R2: 0, C2: 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s.slots[0])
}

func TestUseOfEmptySlotIsNoop(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{{"a"}}}
	s := &Store{}
	s.Use(tbl, selector.Rect{R1: 0, C1: 0, R2: 0, C2: 0}, 3)
	assert.Equal(t, "a", tbl.Cell(0, 0))
}

func TestIncOnEmptySlotYieldsOne(t *testing.T) {
	s := &Store{}
	s.Inc(0)
	assert.Equal(t, "1", s.slots[0])
}

func TestIncOnNonNumericSlotYieldsOne(t *testing.T) {
	s := &Store{slots: [10]string{0: "abc"}}
	s.Inc(0)
	assert.Equal(t, "1", s.slots[0])
}

func TestIncIsMonotoneAndIntegerFormatted(t *testing.T) {
	s := &Store{slots: [10]string{0: "3"}}
	s.Inc(0)
	assert.Equal(t, "4", s.slots[0])
}

func TestIncPreservesFractionalFormatting(t *testing.T) {
	s := &Store{slots: [10]string{0: "3.5"}}
	s.Inc(0)
	assert.Equal(t, "4.5", s.slots[0])
}
