package sheetinspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderNames(t *testing.T) {
	row := []Cell{Text("Name"), Empty(), Text("Name"), Text("Name.1"), Text("Name"), Int(2024)}
	got := headerNames(row, 7)
	assert.Equal(t, []string{"Name", "Unnamed: 1", "Name.1", "Name.1.1", "Name.2", "2024", "Unnamed: 6"}, got)
}

func TestTableAtTreatsMissingCellsAsEmpty(t *testing.T) {
	tbl := &Table{
		Mode:   ModeTyped,
		Header: []string{"A", "B", "C"},
		Rows: [][]Cell{
			{Text("x")},
			{Text("y"), Int(2), Int(3)},
		},
	}

	assert.True(t, tbl.At(0, 2).IsEmpty())
	assert.True(t, tbl.At(5, 0).IsEmpty())
	assert.Equal(t, Int(2), tbl.At(1, 1))
	assert.Equal(t, []Cell{Empty(), Int(3)}, tbl.Column(2))
	assert.Equal(t, 3, tbl.Width())
}

func TestRawTableHeaderIsRowZero(t *testing.T) {
	tbl := &Table{
		Mode: ModeRaw,
		Rows: [][]Cell{
			{Text("Region"), Text("Count")},
			{Text("North"), Int(1)},
		},
	}

	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, []string{"Region", "Count"}, tbl.Columns())
	assert.Len(t, tbl.DataRows(), 1)
	assert.Equal(t, []Cell{Text("North")}, tbl.Column(0))

	empty := &Table{Mode: ModeRaw}
	assert.Nil(t, empty.Columns())
	assert.Nil(t, empty.DataRows())
}
