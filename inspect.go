package sheetinspect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultPreviewRows is how many data rows the preview section shows.
const DefaultPreviewRows = 10

type Inspector struct {
	typedOpen        OpenFunc
	rawOpen          OpenFunc
	previewRows      int
	labels           Labels
	describe         bool
	progressCallback func(ProgressInfo)
	progressChan     chan<- ProgressInfo
}

type InspectorOption func(*Inspector)

type ProgressInfo struct {
	Phase   string  `json:"phase"`
	Sheet   string  `json:"sheet,omitempty"`
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// WithPreviewRows sets the preview length. A negative value previews every row.
func WithPreviewRows(rows int) InspectorOption {
	return func(i *Inspector) {
		i.previewRows = rows
	}
}

func WithLabels(l Labels) InspectorOption {
	return func(i *Inspector) {
		i.labels = l
	}
}

// WithDescribe appends numeric column statistics to typed reports.
func WithDescribe(enabled bool) InspectorOption {
	return func(i *Inspector) {
		i.describe = enabled
	}
}

// WithTypedOpener replaces the workbook reader used in typed mode. Passing
// nil leaves typed mode without a reader.
func WithTypedOpener(open OpenFunc) InspectorOption {
	return func(i *Inspector) {
		i.typedOpen = open
	}
}

// WithRawOpener replaces the workbook reader used in raw mode. Passing nil
// leaves raw mode without a reader.
func WithRawOpener(open OpenFunc) InspectorOption {
	return func(i *Inspector) {
		i.rawOpen = open
	}
}

func WithProgressCallback(fn func(ProgressInfo)) InspectorOption {
	return func(i *Inspector) {
		i.progressCallback = fn
	}
}

func WithProgressChannel(ch chan<- ProgressInfo) InspectorOption {
	return func(i *Inspector) {
		i.progressChan = ch
	}
}

func New(opts ...InspectorOption) *Inspector {
	ins := &Inspector{
		typedOpen:   OpenExcelize,
		rawOpen:     OpenXlsxReader,
		previewRows: DefaultPreviewRows,
		labels:      EnglishLabels,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// Run loads path and writes its report to w. Sections written before a
// failure stay written; nothing after it is produced.
func (i *Inspector) Run(w io.Writer, path string, mode Mode) error {
	t, err := i.Load(path, mode)
	if err != nil {
		return err
	}
	return i.Report(w, t)
}

// Load reads the first sheet of the workbook at path. The file is only
// read, and its handle is released before Load returns.
func (i *Inspector) Load(path string, mode Mode) (*Table, error) {
	open, module := i.typedOpen, excelizeModule
	if mode == ModeRaw {
		open, module = i.rawOpen, xlsxreaderModule
	}
	if open == nil {
		e := newError(ErrDependencyMissing, "", fmt.Errorf("no workbook reader for %s mode", mode))
		e.Hint = fmt.Sprintf("install it with: go get %s", module)
		return nil, e
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, newError(ErrFileAccess, path, err)
	}
	if fi.IsDir() {
		return nil, newError(ErrFileAccess, path, errors.New("is a directory"))
	}

	wb, err := open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, newError(ErrFileAccess, path, err)
		}
		return nil, newError(ErrFormat, path, fmt.Errorf("failed to open workbook: %w", err))
	}
	defer wb.Close()

	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return nil, newError(ErrFormat, path, errors.New("workbook has no sheets"))
	}
	sheet := sheets[0]

	i.emitProgress("load_rows", sheet, 0, 0)
	rows, err := wb.ReadRows(sheet, func(n int) {
		if n%100 == 0 {
			i.emitProgress("load_rows", sheet, n, 0)
		}
	})
	if err != nil {
		return nil, newError(ErrFormat, path, fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}
	i.emitProgress("load_rows", sheet, len(rows), len(rows))

	t := &Table{
		Source:     path,
		Sheet:      sheet,
		SheetNames: append([]string(nil), sheets...),
		Mode:       mode,
	}
	if mode == ModeRaw {
		t.Rows = rows
		return t, nil
	}
	buildTyped(t, rows)
	return t, nil
}

// buildTyped splits off the header row and infers column types.
func buildTyped(t *Table, rows [][]Cell) {
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		t.Rows = [][]Cell{}
		return
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	t.Header = headerNames(rows[0], width)
	t.Rows = rows[1:]
	t.Types = make([]ColumnType, width)
	for c := 0; c < width; c++ {
		t.Types[c] = InferColumnType(t.Column(c))
	}
}

func (i *Inspector) emitProgress(phase, sheet string, current, total int) {
	if i.progressCallback == nil && i.progressChan == nil {
		return
	}
	pct := 0.0
	if total > 0 {
		pct = (float64(current) / float64(total)) * 100.0
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
	}
	info := ProgressInfo{
		Phase:   phase,
		Sheet:   sheet,
		Current: current,
		Total:   total,
		Percent: pct,
	}
	if i.progressCallback != nil {
		i.progressCallback(info)
	}
	if i.progressChan != nil {
		select {
		case i.progressChan <- info:
		default:
		}
	}
}
