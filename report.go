package sheetinspect

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	typedBannerWidth = 60
	rawBannerWidth   = 70
)

type section func(t *Table) string

// Report writes the report for t to w, one section at a time, in a fixed
// order. A write failure stops the report at that section.
func (i *Inspector) Report(w io.Writer, t *Table) error {
	sections := i.sections(t)
	total := len(sections)
	i.emitProgress("report_sections", t.Sheet, 0, total)
	for idx, render := range sections {
		if _, err := io.WriteString(w, render(t)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		i.emitProgress("report_sections", t.Sheet, idx+1, total)
	}
	return nil
}

// RenderReport returns the full report for t as a string.
func (i *Inspector) RenderReport(t *Table) string {
	var b strings.Builder
	for _, render := range i.sections(t) {
		b.WriteString(render(t))
	}
	return b.String()
}

func (i *Inspector) sections(t *Table) []section {
	if t.Mode == ModeRaw {
		if t.RowCount() == 0 {
			return []section{i.banner, i.totalRows, i.noRows}
		}
		return []section{i.banner, i.totalRows, i.columns, i.rawPreview}
	}
	out := []section{i.banner, i.totalRows, i.columns, i.typedPreview, i.columnTypes, i.groupCounts}
	if i.describe {
		out = append(out, i.describeSection)
	}
	return out
}

func (i *Inspector) banner(t *Table) string {
	width, title := typedBannerWidth, i.labels.Title
	if t.Mode == ModeRaw {
		width, title = rawBannerWidth, i.labels.RawTitle
	}
	rule := strings.Repeat("=", width)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("📊 " + fmt.Sprintf(title, filepath.Base(t.Source)) + "\n")
	b.WriteString(rule + "\n")
	if t.Mode == ModeRaw {
		b.WriteString("\n" + fmt.Sprintf(i.labels.Sheets, formatList(t.SheetNames)) + "\n")
	}
	return b.String()
}

func (i *Inspector) totalRows(t *Table) string {
	label := i.labels.TotalRows
	if t.Mode == ModeRaw {
		label = i.labels.RawTotalRows
	}
	return "\n" + fmt.Sprintf(label, t.RowCount()) + "\n"
}

func (i *Inspector) noRows(t *Table) string {
	return "\n" + i.labels.NoRows + "\n"
}

func (i *Inspector) columns(t *Table) string {
	if t.Mode == ModeRaw {
		return "\n" + fmt.Sprintf(i.labels.RawColumns, formatRow(t.Rows[0])) + "\n"
	}
	return "\n" + fmt.Sprintf(i.labels.Columns, formatList(t.Columns())) + "\n"
}

func (i *Inspector) previewLimit(available int) int {
	if i.previewRows < 0 || i.previewRows > available {
		return available
	}
	return i.previewRows
}

func (i *Inspector) previewHeading() string {
	if i.previewRows < 0 {
		return i.labels.AllRows
	}
	return fmt.Sprintf(i.labels.Preview, i.previewRows)
}

func (i *Inspector) typedPreview(t *Table) string {
	var b strings.Builder
	b.WriteString("\n" + i.previewHeading() + "\n")

	rows := t.DataRows()
	n := i.previewLimit(len(rows))
	if n == 0 {
		b.WriteString(i.labels.NoRows + "\n")
		return b.String()
	}

	header := make([]string, len(t.Header))
	for c, name := range t.Header {
		header[c] = displayText(name)
	}
	index := make([]string, n)
	grid := make([][]string, n)
	for r := 0; r < n; r++ {
		index[r] = strconv.Itoa(r)
		grid[r] = make([]string, len(header))
		for c := range header {
			grid[r][c] = displayText(cellAt(rows[r], c).String())
		}
	}
	b.WriteString(renderGrid(index, header, grid))
	return b.String()
}

func (i *Inspector) rawPreview(t *Table) string {
	var b strings.Builder
	b.WriteString("\n" + i.previewHeading() + "\n")
	b.WriteString(i.labels.Header + ": " + displayText(formatRow(t.Rows[0])) + "\n")

	data := t.DataRows()
	n := i.previewLimit(len(data))
	for r := 0; r < n; r++ {
		b.WriteString(strconv.Itoa(r+1) + ": " + displayText(formatRow(data[r])) + "\n")
	}
	return b.String()
}

func (i *Inspector) columnTypes(t *Table) string {
	var b strings.Builder
	b.WriteString("\n" + i.labels.Types + "\n")
	names := make([]string, len(t.Header))
	types := make([]string, len(t.Header))
	for c, name := range t.Header {
		names[c] = displayText(name)
		types[c] = t.Types[c].String()
	}
	b.WriteString(renderPairs(names, types))
	return b.String()
}

func (i *Inspector) groupCounts(t *Table) string {
	name := ""
	if len(t.Header) > 0 {
		name = displayText(t.Header[0])
	}

	var b strings.Builder
	b.WriteString("\n" + fmt.Sprintf(i.labels.Groups, name) + "\n")
	if len(t.Header) == 0 {
		return b.String()
	}

	groups := GroupByFirstColumn(t)
	keys := make([]string, len(groups))
	counts := make([]string, len(groups))
	for idx, g := range groups {
		keys[idx] = displayText(g.Key.String())
		if g.Key.IsEmpty() {
			keys[idx] = i.labels.Empty
		}
		counts[idx] = strconv.Itoa(g.Count)
	}
	b.WriteString(renderPairs(keys, counts))
	return b.String()
}

func (i *Inspector) describeSection(t *Table) string {
	var b strings.Builder
	b.WriteString("\n" + i.labels.Describe + "\n")

	stats := Describe(t)
	if len(stats) == 0 {
		b.WriteString(i.labels.NoRows + "\n")
		return b.String()
	}

	header := make([]string, len(stats))
	for c, s := range stats {
		header[c] = displayText(s.Column)
	}
	grid := make([][]string, len(describeRows))
	for r, name := range describeRows {
		grid[r] = make([]string, len(stats))
		for c, s := range stats {
			grid[r][c] = s.field(name)
		}
	}
	b.WriteString(renderGrid(describeRows, header, grid))
	return b.String()
}
