package sheetinspect

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which value a Cell holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindText
	KindBool
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "boolean"
	case KindTime:
		return "datetime"
	default:
		return "empty"
	}
}

// Cell is a single untyped spreadsheet value. The zero value is an empty cell.
type Cell struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	t    time.Time
}

func Empty() Cell           { return Cell{} }
func Int(v int64) Cell      { return Cell{kind: KindInt, i: v} }
func Float(v float64) Cell  { return Cell{kind: KindFloat, f: v} }
func Text(v string) Cell    { return Cell{kind: KindText, s: v} }
func Bool(v bool) Cell      { return Cell{kind: KindBool, b: v} }
func Time(v time.Time) Cell { return Cell{kind: KindTime, t: v} }

func (c Cell) Kind() Kind      { return c.kind }
func (c Cell) IsEmpty() bool   { return c.kind == KindEmpty }
func (c Cell) IsNumeric() bool { return c.kind == KindInt || c.kind == KindFloat }

// Value returns the underlying Go value, or nil for an empty cell.
func (c Cell) Value() interface{} {
	switch c.kind {
	case KindInt:
		return c.i
	case KindFloat:
		return c.f
	case KindText:
		return c.s
	case KindBool:
		return c.b
	case KindTime:
		return c.t
	default:
		return nil
	}
}

// Float64 returns the numeric value of an integer or float cell.
func (c Cell) Float64() (float64, bool) {
	switch c.kind {
	case KindInt:
		return float64(c.i), true
	case KindFloat:
		return c.f, true
	default:
		return 0, false
	}
}

// String renders the cell for display. Empty cells render as "".
func (c Cell) String() string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindFloat:
		return formatFloat(c.f)
	case KindText:
		return c.s
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindTime:
		if c.t.Hour() == 0 && c.t.Minute() == 0 && c.t.Second() == 0 && c.t.Nanosecond() == 0 {
			return c.t.Format("2006-01-02")
		}
		return c.t.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Repr renders the cell so that its kind stays visible: text is quoted and
// empty cells print as null.
func (c Cell) Repr() string {
	switch c.kind {
	case KindEmpty:
		return "null"
	case KindText:
		return strconv.Quote(c.s)
	default:
		return c.String()
	}
}

// Equal reports raw equality, kind included. Int(5) never equals Float(5)
// or Text("5").
func (c Cell) Equal(o Cell) bool {
	return c.kind == o.kind && c.key() == o.key()
}

// key is a canonical string for c within its kind, used for grouping.
func (c Cell) key() string {
	if c.kind == KindTime {
		return c.t.UTC().Format(time.RFC3339Nano)
	}
	return c.String()
}

// Compare orders two cells of the same non-empty kind. ok is false when the
// cells are not mutually orderable.
func Compare(a, b Cell) (cmp int, ok bool) {
	if a.kind != b.kind || a.kind == KindEmpty {
		return 0, false
	}
	switch a.kind {
	case KindInt:
		return compareOrdered(a.i, b.i), true
	case KindFloat:
		return compareOrdered(a.f, b.f), true
	case KindText:
		return strings.Compare(a.s, b.s), true
	case KindBool:
		switch {
		case a.b == b.b:
			return 0, true
		case !a.b:
			return -1, true
		default:
			return 1, true
		}
	case KindTime:
		return a.t.Compare(b.t), true
	}
	return 0, false
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == math.Trunc(f) && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// parseNumber converts a stored numeric string into an Int cell when it is a
// whole number without a decimal point, a Float cell otherwise.
func parseNumber(raw string) (Cell, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Empty(), false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i), true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Empty(), false
	}
	return Float(f), true
}

func parseBool(raw string) (Cell, bool) {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return Empty(), false
	}
	return Bool(b), true
}

var timeLayouts = [...]string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(raw string) (Cell, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Time(t), true
		}
	}
	return Empty(), false
}
