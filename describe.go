package sheetinspect

import (
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
)

var describeRows = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// ColumnStats summarises the populated values of one numeric column.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation; NaN below two values
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes ColumnStats for every integer or float column of a
// typed table, in column order. Columns without values are skipped;
// a statistic that cannot be computed is NaN.
func Describe(t *Table) []ColumnStats {
	out := make([]ColumnStats, 0)
	for c, typ := range t.Types {
		if !typ.IsNumeric() {
			continue
		}
		data := make(stats.Float64Data, 0, len(t.DataRows()))
		for _, cell := range t.Column(c) {
			if v, ok := cell.Float64(); ok {
				data = append(data, v)
			}
		}
		if data.Len() == 0 {
			continue
		}
		out = append(out, describeColumn(t.Header[c], data))
	}
	return out
}

func describeColumn(name string, data stats.Float64Data) ColumnStats {
	s := ColumnStats{Column: name, Count: data.Len(), Std: math.NaN()}
	s.Mean = orNaN(stats.Mean(data))
	if data.Len() > 1 {
		s.Std = orNaN(stats.StandardDeviationSample(data))
	}
	s.Min = orNaN(stats.Min(data))
	s.Max = orNaN(stats.Max(data))

	// Quartile splits the values into halves, so a single value has
	// empty halves and is its own quartile.
	if data.Len() == 1 {
		s.Q25, s.Median, s.Q75 = data[0], data[0], data[0]
		return s
	}
	q, err := stats.Quartile(data)
	if err != nil {
		s.Q25, s.Median, s.Q75 = math.NaN(), math.NaN(), math.NaN()
		return s
	}
	s.Q25, s.Median, s.Q75 = q.Q1, q.Q2, q.Q3
	return s
}

func orNaN(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

func (s ColumnStats) field(name string) string {
	switch name {
	case "count":
		return strconv.Itoa(s.Count)
	case "mean":
		return formatStat(s.Mean)
	case "std":
		return formatStat(s.Std)
	case "min":
		return formatStat(s.Min)
	case "25%":
		return formatStat(s.Q25)
	case "50%":
		return formatStat(s.Median)
	case "75%":
		return formatStat(s.Q75)
	case "max":
		return formatStat(s.Max)
	}
	return ""
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
