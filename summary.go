package sheetinspect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toon "github.com/mateuszkardas/toon-go"
)

// SummarySampleRows is how many data rows a Summary carries.
const SummarySampleRows = 3

// Summary is the machine-readable digest of a table.
type Summary struct {
	Source    string                   `json:"source"`
	Sheet     string                   `json:"sheet"`
	Mode      string                   `json:"mode"`
	TotalRows int                      `json:"total_rows"`
	Columns   []string                 `json:"columns"`
	Sample    []map[string]interface{} `json:"sample"`

	keys []string
}

// Summarize builds a Summary holding the first n data rows keyed by column.
func Summarize(t *Table, n int) Summary {
	keys := t.Header
	if t.Mode == ModeRaw && len(t.Rows) > 0 {
		keys = headerNames(t.Rows[0], t.Width())
	}

	rows := t.DataRows()
	if n < 0 || n > len(rows) {
		n = len(rows)
	}
	sample := make([]map[string]interface{}, 0, n)
	for r := 0; r < n; r++ {
		m := make(map[string]interface{}, len(keys))
		for c, k := range keys {
			m[k] = summaryValue(cellAt(rows[r], c))
		}
		sample = append(sample, m)
	}

	columns := t.Columns()
	if columns == nil {
		columns = []string{}
	}
	return Summary{
		Source:    filepath.Base(t.Source),
		Sheet:     t.Sheet,
		Mode:      t.Mode.String(),
		TotalRows: t.RowCount(),
		Columns:   columns,
		Sample:    sample,
		keys:      keys,
	}
}

func summaryValue(c Cell) interface{} {
	if c.Kind() == KindTime {
		return c.String()
	}
	return c.Value()
}

// SummaryFormat picks the encoding from the file extension: ".toon" for
// TOON, anything else JSON.
func SummaryFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toon") {
		return "toon"
	}
	return "json"
}

func MarshalSummary(s Summary, format string) ([]byte, error) {
	switch format {
	case "toon":
		out, err := marshalSummaryTOON(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode summary as toon: %w", err)
		}
		return out, nil
	case "json":
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode summary as json: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported summary format: %s", format)
	}
}

// marshalSummaryTOON writes the fields one at a time so their order, and the
// column order of each sample row, is fixed. toon encodes objects from a map.
func marshalSummaryTOON(s Summary) ([]byte, error) {
	keys := s.keys
	if keys == nil {
		keys = sampleKeys(s.Sample)
	}
	sample := make([][]interface{}, len(s.Sample))
	for r, m := range s.Sample {
		sample[r] = make([]interface{}, len(keys))
		for c, k := range keys {
			sample[r][c] = m[k]
		}
	}

	fields := []struct {
		key   string
		value interface{}
	}{
		{"source", s.Source},
		{"sheet", s.Sheet},
		{"mode", s.Mode},
		{"total_rows", s.TotalRows},
		{"columns", s.Columns},
		{"sample_keys", keys},
		{"sample", sample},
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		out, err := toon.Encode(map[string]interface{}{f.key: f.value}, nil)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.key, err)
		}
		lines = append(lines, out)
	}
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

func sampleKeys(sample []map[string]interface{}) []string {
	seen := make(map[string]bool)
	keys := make([]string, 0)
	for _, m := range sample {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// WriteSummary encodes s in the format implied by path and writes it there.
func WriteSummary(path string, s Summary) error {
	out, err := MarshalSummary(s, SummaryFormat(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
