package sheetinspect

import (
	"fmt"

	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
	"github.com/xuri/nfp"
)

// Workbook is the slice of a spreadsheet library the inspector relies on.
type Workbook interface {
	SheetNames() []string
	// ReadRows returns every stored row of sheet in order. Blank rows in the
	// middle of the sheet come back as empty slices. onRow, if set, is called
	// with the running row count.
	ReadRows(sheet string, onRow func(n int)) ([][]Cell, error)
	Close() error
}

// OpenFunc opens a workbook handle for path.
type OpenFunc func(path string) (Workbook, error)

const (
	excelizeModule   = "github.com/xuri/excelize/v2"
	xlsxreaderModule = "github.com/thedatashed/xlsxreader"
)

type excelizeWorkbook struct {
	file       *excelize.File
	dateStyles map[int]bool
}

// OpenExcelize opens path with excelize. Cell kinds come from the stored
// cell type and number format, so date serials decode to times.
func OpenExcelize(path string) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &excelizeWorkbook{file: f, dateStyles: make(map[int]bool)}, nil
}

func (w *excelizeWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *excelizeWorkbook) ReadRows(sheet string, onRow func(n int)) ([][]Cell, error) {
	rows, err := w.file.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([][]Cell, 0)
	for rowNum := 1; rows.Next(); rowNum++ {
		values, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		row := make([]Cell, len(values))
		for colIdx, raw := range values {
			cell, err := w.cell(sheet, colIdx+1, rowNum, raw)
			if err != nil {
				return nil, err
			}
			row[colIdx] = cell
		}
		out = append(out, trimTrailingEmpty(row))
		if onRow != nil {
			onRow(rowNum)
		}
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

func (w *excelizeWorkbook) cell(sheet string, col, row int, raw string) (Cell, error) {
	if raw == "" {
		return Empty(), nil
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Empty(), err
	}
	typ, err := w.file.GetCellType(sheet, axis)
	if err != nil {
		return Empty(), fmt.Errorf("cell %s: %w", axis, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		if c, ok := parseBool(raw); ok {
			return c, nil
		}
	case excelize.CellTypeDate:
		if c, ok := parseTime(raw); ok {
			return c, nil
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		num, ok := parseNumber(raw)
		if !ok {
			break
		}
		isDate, err := w.isDateStyle(sheet, axis)
		if err != nil {
			return Empty(), fmt.Errorf("cell %s: %w", axis, err)
		}
		if isDate {
			serial, _ := num.Float64()
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return Time(t), nil
			}
		}
		return num, nil
	}
	return Text(raw), nil
}

func (w *excelizeWorkbook) isDateStyle(sheet, axis string) (bool, error) {
	idx, err := w.file.GetCellStyle(sheet, axis)
	if err != nil {
		return false, err
	}
	if v, ok := w.dateStyles[idx]; ok {
		return v, nil
	}
	style, err := w.file.GetStyle(idx)
	if err != nil {
		return false, err
	}
	v := isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	w.dateStyles[idx] = v
	return v, nil
}

func (w *excelizeWorkbook) Close() error {
	return w.file.Close()
}

// isDateNumFmt reports whether a number format renders a date or time.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		p := nfp.NumberFormatParser()
		for _, section := range p.Parse(*custom) {
			for _, token := range section.Items {
				switch token.TType {
				case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
					return true
				}
			}
		}
		return false
	}
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

type xlsxWorkbook struct {
	xl *xlsxreader.XlsxFileCloser
}

// OpenXlsxReader opens path with xlsxreader, which streams rows and keeps
// each cell's stored value.
func OpenXlsxReader(path string) (Workbook, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{xl: xl}, nil
}

func (w *xlsxWorkbook) SheetNames() []string {
	return w.xl.Sheets
}

func (w *xlsxWorkbook) ReadRows(sheet string, onRow func(n int)) ([][]Cell, error) {
	out := make([][]Cell, 0)
	var readErr error
	// The channel is drained even after an error so the reader goroutine exits.
	for row := range w.xl.ReadRows(sheet) {
		if readErr != nil {
			continue
		}
		if row.Error != nil {
			readErr = row.Error
			continue
		}
		for len(out) < row.Index-1 {
			out = append(out, []Cell{})
		}
		cells, err := xlsxRowCells(row.Cells)
		if err != nil {
			readErr = fmt.Errorf("row %d: %w", row.Index, err)
			continue
		}
		out = append(out, cells)
		if onRow != nil {
			onRow(len(out))
		}
	}
	if readErr != nil {
		return nil, readErr
	}
	return out, nil
}

func xlsxRowCells(stored []xlsxreader.Cell) ([]Cell, error) {
	cells := make([]Cell, 0, len(stored))
	for _, c := range stored {
		col, err := excelize.ColumnNameToNumber(c.Column)
		if err != nil {
			return nil, err
		}
		for len(cells) < col {
			cells = append(cells, Empty())
		}
		cells[col-1] = xlsxCell(c)
	}
	return trimTrailingEmpty(cells), nil
}

func xlsxCell(c xlsxreader.Cell) Cell {
	if c.Value == "" {
		return Empty()
	}
	switch c.Type {
	case xlsxreader.TypeNumerical:
		if v, ok := parseNumber(c.Value); ok {
			return v
		}
	case xlsxreader.TypeBoolean:
		if v, ok := parseBool(c.Value); ok {
			return v
		}
	case xlsxreader.TypeDateTime:
		if v, ok := parseTime(c.Value); ok {
			return v
		}
	}
	return Text(c.Value)
}

func (w *xlsxWorkbook) Close() error {
	return w.xl.Close()
}
