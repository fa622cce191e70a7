package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_ColumnOrientation(t *testing.T) {
	payload := `{"query": {"0": "a", "1": "b"}, "output_true": {"0": "x", "1": "y"}}`

	frame, err := FromJSON(payload)
	require.NoError(t, err)

	assert.Equal(t, 2, frame.Len())
	assert.Equal(t, []string{"output_true", "query"}, frame.Columns())
	assert.True(t, frame.HasColumn("query"))
	assert.False(t, frame.HasColumn("output"))

	cell, err := frame.Cell(1, "query")
	require.NoError(t, err)
	assert.Equal(t, "b", cell)
}

func TestFromJSON_RecordOrientation(t *testing.T) {
	payload := `[{"query": "a", "output": "o1"}, {"query": "b", "output": "o2"}]`

	frame, err := FromJSON(payload)
	require.NoError(t, err)

	assert.Equal(t, 2, frame.Len())
	assert.True(t, frame.HasColumn("output"))

	cell, err := frame.Cell(0, "output")
	require.NoError(t, err)
	assert.Equal(t, "o1", cell)
}

func TestFromJSON_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json"},
		{"scalar", "42"},
		{"ragged columns", `{"a": {"0": 1}, "b": {"0": 1, "1": 2}}`},
		{"bad row index", `{"a": {"x": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON(tt.payload)
			assert.Error(t, err)
		})
	}
}

func TestCell_Conversions(t *testing.T) {
	payload := `[{"n": 3.5, "b": true, "o": {"k": "v"}, "missing": null}]`

	frame, err := FromJSON(payload)
	require.NoError(t, err)

	n, err := frame.Cell(0, "n")
	require.NoError(t, err)
	assert.Equal(t, "3.5", n)

	b, err := frame.Cell(0, "b")
	require.NoError(t, err)
	assert.Equal(t, "true", b)

	o, err := frame.Cell(0, "o")
	require.NoError(t, err)
	assert.JSONEq(t, `{"k": "v"}`, o)

	missing, err := frame.Cell(0, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", missing)

	absent, err := frame.Cell(0, "nope")
	require.NoError(t, err)
	assert.Equal(t, "", absent)
}

func TestRow_OutOfRange(t *testing.T) {
	frame, err := FromJSON(`[{"query": "a"}]`)
	require.NoError(t, err)

	_, err = frame.Row(1)
	assert.Error(t, err)
	_, err = frame.Row(-1)
	assert.Error(t, err)
}
