package sheetinspect

// ColumnType is the effective type of a column, inferred from its populated
// cells after loading.
type ColumnType uint8

const (
	ColumnEmpty ColumnType = iota
	ColumnInteger
	ColumnFloat
	ColumnText
	ColumnBoolean
	ColumnDateTime
	ColumnMixed
)

func (t ColumnType) String() string {
	switch t {
	case ColumnInteger:
		return "integer"
	case ColumnFloat:
		return "float"
	case ColumnText:
		return "text"
	case ColumnBoolean:
		return "boolean"
	case ColumnDateTime:
		return "datetime"
	case ColumnMixed:
		return "mixed"
	default:
		return "empty"
	}
}

func (t ColumnType) IsNumeric() bool {
	return t == ColumnInteger || t == ColumnFloat
}

func columnTypeOf(k Kind) ColumnType {
	switch k {
	case KindInt:
		return ColumnInteger
	case KindFloat:
		return ColumnFloat
	case KindText:
		return ColumnText
	case KindBool:
		return ColumnBoolean
	case KindTime:
		return ColumnDateTime
	default:
		return ColumnEmpty
	}
}

// mergeColumnType folds one more populated cell kind into acc.
func mergeColumnType(acc ColumnType, k Kind) ColumnType {
	next := columnTypeOf(k)
	switch {
	case next == ColumnEmpty:
		return acc
	case acc == ColumnEmpty, acc == next:
		return next
	case acc.IsNumeric() && next.IsNumeric():
		return ColumnFloat
	default:
		return ColumnMixed
	}
}

// InferColumnType reduces the populated cells of a column to a single type.
// Empty cells are ignored; a column with no populated cells is ColumnEmpty.
func InferColumnType(cells []Cell) ColumnType {
	acc := ColumnEmpty
	for _, c := range cells {
		acc = mergeColumnType(acc, c.Kind())
		if acc == ColumnMixed {
			break
		}
	}
	return acc
}
