package sheetinspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 3, displayWidth("abc"))
	assert.Equal(t, 4, displayWidth("서울"))
	assert.Equal(t, 6, displayWidth("A서울B"))
	assert.Equal(t, 0, displayWidth(""))
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "  서울", padLeft("서울", 6))
	assert.Equal(t, "서울  ", padRight("서울", 6))
	assert.Equal(t, "toolong", padLeft("toolong", 3))
}

func TestRenderGridAlignsWideText(t *testing.T) {
	got := renderGrid(
		[]string{"0", "1"},
		[]string{"지역", "N"},
		[][]string{{"서울", "1"}, {"Busan", "22"}},
	)
	want := "    지역   N\n" +
		"0   서울   1\n" +
		"1  Busan  22\n"
	assert.Equal(t, want, got)
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, `["Region", "Count"]`, formatList([]string{"Region", "Count"}))
	assert.Equal(t, `[]`, formatList(nil))
	assert.Equal(t, `["North", 1, null]`, formatRow([]Cell{Text("North"), Int(1), Empty()}))
}

func TestIsDateNumFmt(t *testing.T) {
	custom := func(s string) *string { return &s }

	assert.True(t, isDateNumFmt(14, nil))
	assert.True(t, isDateNumFmt(22, nil))
	assert.False(t, isDateNumFmt(0, nil))
	assert.False(t, isDateNumFmt(2, nil))
	assert.True(t, isDateNumFmt(164, custom("yyyy-mm-dd")))
	assert.True(t, isDateNumFmt(165, custom(`[$-412]yyyy"년" m"월"`)))
	assert.False(t, isDateNumFmt(166, custom(`#,##0"명"`)))
	assert.False(t, isDateNumFmt(167, custom("[Red]0.00")))
	assert.False(t, isDateNumFmt(168, custom(`_(* #,##0_);_(* (#,##0);_(* "-"_);_(@_)`)))
	assert.False(t, isDateNumFmt(169, custom("0_m;*s0")))
	assert.True(t, isDateNumFmt(170, custom("[h]:mm:ss")))
	assert.True(t, isDateNumFmt(171, custom("h:mm AM/PM")))
}
