package services

import (
	"testing"

	"github.com/etalab-ia/evalap/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParamGrid_CartesianProduct(t *testing.T) {
	common := map[string]any{"dataset": "D", "metrics": []any{"m1"}}
	grid := map[string][]any{
		"model.name":                        {"A", "B"},
		"model.sampling_params.temperature": {0.2, 0.7},
	}

	points := BuildParamGrid(common, grid)
	require.Len(t, points, 4)

	for _, point := range points {
		assert.Equal(t, "D", point["dataset"])
		model, ok := point["model"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, []any{"A", "B"}, model["name"])
		params, ok := model["sampling_params"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, []any{0.2, 0.7}, params["temperature"])
	}

	// Keys expand in sorted order, so the sequence is deterministic.
	first, _ := points[0]["model"].(map[string]any)
	assert.Equal(t, "A", first["name"])
}

func TestBuildParamGrid_EmptyGrid(t *testing.T) {
	points := BuildParamGrid(map[string]any{"dataset": "D"}, nil)
	require.Len(t, points, 1)
	assert.Equal(t, "D", points[0]["dataset"])
}

func TestBuildParamGrid_DoesNotMutateCommon(t *testing.T) {
	common := map[string]any{"model": map[string]any{"name": "base"}}
	grid := map[string][]any{"model.name": {"A", "B"}}

	points := BuildParamGrid(common, grid)
	require.Len(t, points, 2)

	original, _ := common["model"].(map[string]any)
	assert.Equal(t, "base", original["name"])

	p0, _ := points[0]["model"].(map[string]any)
	p1, _ := points[1]["model"].(map[string]any)
	assert.NotEqual(t, p0["name"], p1["name"])
}

func TestDecodeExperimentParams(t *testing.T) {
	point := map[string]any{
		"dataset": "D",
		"metrics": []any{"judge_exactness"},
		"model":   map[string]any{"name": "A", "base_url": "http://llm", "api_key": "k"},
	}

	req, err := decodeExperimentParams(point)
	require.NoError(t, err)
	assert.Equal(t, "D", req.Dataset)
	assert.Equal(t, []string{"judge_exactness"}, req.Metrics)
	require.NotNil(t, req.Model)
	assert.Equal(t, "A", req.Model.Name)
}

func TestDecodeExperimentParams_BadShape(t *testing.T) {
	_, err := decodeExperimentParams(map[string]any{"metrics": "not-a-list"})
	assert.Error(t, err)
}

func TestMaxNameSuffix(t *testing.T) {
	exps := []*ent.Experiment{
		{Name: "set__0"},
		{Name: "set__7"},
		{Name: "custom-name"},
		{Name: "set__3"},
	}
	assert.Equal(t, 7, maxNameSuffix(exps))
	assert.Equal(t, -1, maxNameSuffix([]*ent.Experiment{{Name: "plain"}}))
	assert.Equal(t, -1, maxNameSuffix(nil))
}
