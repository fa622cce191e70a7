// Package tabular parses the serialized tabular payloads that datasets carry.
// Payloads are JSON in either column orientation ({"col": {"0": v0, "1": v1}})
// or record orientation ([{"col": v0}, {"col": v1}]), matching what the usual
// dataframe serializers emit.
package tabular

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Well-known column names consulted by the engine. Everything else in a
// payload is carried opaquely.
const (
	ColQuery      = "query"
	ColOutput     = "output"
	ColOutputTrue = "output_true"
)

// Frame is an immutable, row-addressable view over a parsed payload.
type Frame struct {
	columns []string
	rows    []map[string]any
}

// FromJSON parses a serialized payload. It accepts column orientation and
// record orientation; anything else is an error.
func FromJSON(payload string) (*Frame, error) {
	var records []map[string]any
	if err := json.Unmarshal([]byte(payload), &records); err == nil {
		return fromRecords(records)
	}

	var columns map[string]map[string]any
	if err := json.Unmarshal([]byte(payload), &columns); err != nil {
		return nil, fmt.Errorf("payload is neither record- nor column-oriented JSON: %w", err)
	}
	return fromColumns(columns)
}

func fromRecords(records []map[string]any) (*Frame, error) {
	colSet := map[string]struct{}{}
	for _, rec := range records {
		for k := range rec {
			colSet[k] = struct{}{}
		}
	}
	return &Frame{columns: sortedKeys(colSet), rows: records}, nil
}

func fromColumns(columns map[string]map[string]any) (*Frame, error) {
	size := -1
	for name, col := range columns {
		if size == -1 {
			size = len(col)
		} else if len(col) != size {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, len(col), size)
		}
	}
	if size == -1 {
		size = 0
	}

	rows := make([]map[string]any, size)
	for i := range rows {
		rows[i] = make(map[string]any, len(columns))
	}
	for name, col := range columns {
		for key, value := range col {
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= size {
				return nil, fmt.Errorf("column %q has invalid row index %q", name, key)
			}
			rows[idx][name] = value
		}
	}

	colSet := map[string]struct{}{}
	for name := range columns {
		colSet[name] = struct{}{}
	}
	return &Frame{columns: sortedKeys(colSet), rows: rows}, nil
}

// Len returns the row count.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Columns returns the column names in sorted order.
func (f *Frame) Columns() []string {
	return f.columns
}

// HasColumn reports whether the frame contains the named column.
func (f *Frame) HasColumn(name string) bool {
	for _, c := range f.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Row returns the fields of the 0-based row index.
func (f *Frame) Row(numLine int) (map[string]any, error) {
	if numLine < 0 || numLine >= len(f.rows) {
		return nil, fmt.Errorf("row %d out of range [0, %d)", numLine, len(f.rows))
	}
	return f.rows[numLine], nil
}

// Cell returns the string value of one cell. Non-string scalars are
// stringified; a missing cell returns the empty string.
func (f *Frame) Cell(numLine int, column string) (string, error) {
	row, err := f.Row(numLine)
	if err != nil {
		return "", err
	}
	value, ok := row[column]
	if !ok || value == nil {
		return "", nil
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("cell (%d, %s) is not serializable: %w", numLine, column, err)
		}
		return string(raw), nil
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
