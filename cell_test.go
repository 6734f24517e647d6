package sheetinspect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellEqualRespectsKind(t *testing.T) {
	assert.True(t, Int(5).Equal(Int(5)))
	assert.False(t, Int(5).Equal(Text("5")))
	assert.False(t, Int(5).Equal(Float(5)))
	assert.True(t, Empty().Equal(Cell{}))

	utc := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	kst := utc.In(time.FixedZone("KST", 9*3600))
	assert.True(t, Time(utc).Equal(Time(kst)))
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		str  string
		repr string
	}{
		{"empty", Empty(), "", "null"},
		{"int", Int(42), "42", "42"},
		{"whole float", Float(3), "3.0", "3.0"},
		{"float", Float(2.5), "2.5", "2.5"},
		{"text", Text("North"), "North", `"North"`},
		{"bool", Bool(true), "true", "true"},
		{"date", Time(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)), "2024-01-15", "2024-01-15"},
		{"datetime", Time(time.Date(2024, 1, 15, 13, 5, 0, 0, time.UTC)), "2024-01-15 13:05:00", "2024-01-15 13:05:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.cell.String())
			assert.Equal(t, tt.repr, tt.cell.Repr())
		})
	}
}

func TestCompare(t *testing.T) {
	cmp, ok := Compare(Int(1), Int(2))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	cmp, ok = Compare(Text("b"), Text("a"))
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)

	cmp, ok = Compare(Bool(false), Bool(true))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)

	_, ok = Compare(Int(1), Float(2))
	assert.False(t, ok)

	_, ok = Compare(Empty(), Empty())
	assert.False(t, ok)
}

func TestParseNumber(t *testing.T) {
	c, ok := parseNumber("7")
	assert.True(t, ok)
	assert.Equal(t, KindInt, c.Kind())

	c, ok = parseNumber("7.25")
	assert.True(t, ok)
	assert.Equal(t, KindFloat, c.Kind())
	assert.Equal(t, 7.25, c.Value())

	_, ok = parseNumber("seven")
	assert.False(t, ok)
}
