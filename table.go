package sheetinspect

import (
	"fmt"
	"strings"
)

// Mode selects how a workbook is loaded.
type Mode int

const (
	// ModeTyped treats row 0 as the header and infers a type per column.
	ModeTyped Mode = iota
	// ModeRaw keeps every stored row verbatim, header included at index 0.
	ModeRaw
)

func (m Mode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "typed"
}

// Table is one loaded sheet. It is built once by Load and not modified after.
type Table struct {
	Source     string
	Sheet      string
	SheetNames []string
	Mode       Mode

	// Header holds column names in typed mode. Raw tables leave it nil and
	// keep the first stored row in Rows[0].
	Header []string
	Rows   [][]Cell
	// Types is only populated in typed mode.
	Types []ColumnType
}

// RowCount is the reported total: data rows in typed mode, every stored row
// (header included) in raw mode.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// DataRows returns the rows below the header.
func (t *Table) DataRows() [][]Cell {
	if t.Mode == ModeRaw {
		if len(t.Rows) == 0 {
			return nil
		}
		return t.Rows[1:]
	}
	return t.Rows
}

// Columns returns the header values: the typed header names, or the literal
// first row in raw mode.
func (t *Table) Columns() []string {
	if t.Mode == ModeTyped {
		return t.Header
	}
	if len(t.Rows) == 0 {
		return nil
	}
	out := make([]string, len(t.Rows[0]))
	for idx, c := range t.Rows[0] {
		out[idx] = c.String()
	}
	return out
}

// Width is the widest row (or header) in the table.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the cell at row r, column c. Cells past the end of a short row
// are empty.
func (t *Table) At(r, c int) Cell {
	if r < 0 || r >= len(t.Rows) {
		return Empty()
	}
	return cellAt(t.Rows[r], c)
}

// Column returns every data-row value in column c.
func (t *Table) Column(c int) []Cell {
	rows := t.DataRows()
	out := make([]Cell, len(rows))
	for idx, row := range rows {
		out[idx] = cellAt(row, c)
	}
	return out
}

func cellAt(row []Cell, c int) Cell {
	if c < 0 || c >= len(row) {
		return Empty()
	}
	return row[c]
}

// headerNames turns the stored header row into unique column names. Blank
// cells become "Unnamed: <i>" and repeats get ".1", ".2" suffixes.
func headerNames(row []Cell, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for idx := 0; idx < width; idx++ {
		name := strings.TrimSpace(cellAt(row, idx).String())
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", idx)
		}
		if _, dup := seen[name]; dup {
			base := name
			for n := seen[base] + 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[candidate]; !taken {
					seen[base] = n
					name = candidate
					break
				}
			}
		}
		seen[name] = 0
		names[idx] = name
	}
	return names
}

// trimTrailingEmpty drops empty cells from the end of a row.
func trimTrailingEmpty(row []Cell) []Cell {
	last := -1
	for i, c := range row {
		if !c.IsEmpty() {
			last = i
		}
	}
	return row[:last+1]
}

func isEmptyRow(row []Cell) bool {
	return len(trimTrailingEmpty(row)) == 0
}
