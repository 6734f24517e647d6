package sheetinspect

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// displayWidth counts terminal columns: wide and fullwidth runes (Hangul,
// CJK) take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padLeft(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}

func padRight(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

var displayReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func displayText(s string) string {
	return displayReplacer.Replace(s)
}

// renderGrid lays out rows under header with a left-aligned index column
// and right-aligned values, two spaces between columns.
func renderGrid(index []string, header []string, rows [][]string) string {
	indexWidth := 0
	for _, s := range index {
		indexWidth = max(indexWidth, displayWidth(s))
	}
	widths := make([]int, len(header))
	for c, h := range header {
		widths[c] = displayWidth(h)
	}
	for _, row := range rows {
		for c := range header {
			if c < len(row) {
				widths[c] = max(widths[c], displayWidth(row[c]))
			}
		}
	}

	var b strings.Builder
	writeLine := func(idx string, cells []string) {
		var line strings.Builder
		line.WriteString(padRight(idx, indexWidth))
		for c := range header {
			v := ""
			if c < len(cells) {
				v = cells[c]
			}
			line.WriteString("  ")
			line.WriteString(padLeft(v, widths[c]))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	writeLine("", header)
	for r, row := range rows {
		idx := ""
		if r < len(index) {
			idx = index[r]
		}
		writeLine(idx, row)
	}
	return b.String()
}

// renderPairs aligns key/value lines: keys padded on the right, values on
// the left.
func renderPairs(keys, values []string) string {
	kw, vw := 0, 0
	for idx := range keys {
		kw = max(kw, displayWidth(keys[idx]))
		vw = max(vw, displayWidth(values[idx]))
	}
	var b strings.Builder
	for idx := range keys {
		b.WriteString(padRight(keys[idx], kw))
		b.WriteString("  ")
		b.WriteString(padLeft(values[idx], vw))
		b.WriteString("\n")
	}
	return b.String()
}

// formatList renders names as a bracketed, quoted list.
func formatList(values []string) string {
	quoted := make([]string, len(values))
	for idx, v := range values {
		quoted[idx] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatRow renders stored cells so each value's kind stays visible.
func formatRow(row []Cell) string {
	parts := make([]string, len(row))
	for idx, c := range row {
		parts[idx] = c.Repr()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
