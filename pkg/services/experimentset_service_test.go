package services

import (
	"context"
	"fmt"
	"testing"

	testdb "github.com/etalab-ia/evalap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperimentSetService_GridConstruction(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	experiments := NewExperimentService(client.Client, testRegistry(t), testJudge())
	svc := NewExperimentSetService(client.Client, experiments)
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	set, err := svc.Create(ctx, CreateExperimentSetRequest{
		Name: "set",
		CV: &GridCV{
			CommonParams: map[string]any{
				"dataset": "qa",
				"metrics": []any{"judge_exactness"},
				"model":   map[string]any{"base_url": "http://llm", "api_key": "k"},
			},
			GridParams: map[string][]any{"model.name": {"A", "B"}},
			Repeat:     2,
		},
	})
	require.NoError(t, err)

	// One experiment per grid point × repeat, named set__0..set__3.
	require.Len(t, set.Edges.Experiments, 4)
	names := map[string]bool{}
	for _, exp := range set.Edges.Experiments {
		names[exp.Name] = true
	}
	for i := 0; i < 4; i++ {
		assert.True(t, names[fmt.Sprintf("set__%d", i)], "missing set__%d", i)
	}

	models := map[string]int{}
	for _, exp := range set.Edges.Experiments {
		full, err := experiments.Get(ctx, exp.ID, false, false, false)
		require.NoError(t, err)
		require.NotNil(t, full.Edges.Model)
		models[full.Edges.Model.Name]++
	}
	assert.Equal(t, map[string]int{"A": 2, "B": 2}, models)
}

func TestExperimentSetService_RejectsBothListAndGrid(t *testing.T) {
	client := testdb.NewTestClient(t)
	experiments := NewExperimentService(client.Client, testRegistry(t), testJudge())
	svc := NewExperimentSetService(client.Client, experiments)

	_, err := svc.Create(context.Background(), CreateExperimentSetRequest{
		Name:        "both",
		Experiments: []CreateExperimentRequest{{Name: "e"}},
		CV:          &GridCV{},
	})
	var validErr *ValidationError
	assert.ErrorAs(t, err, &validErr)
}

func TestExperimentSetService_CreateIsAtomic(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	experiments := NewExperimentService(client.Client, testRegistry(t), testJudge())
	svc := NewExperimentSetService(client.Client, experiments)
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	model := &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"}
	_, err = svc.Create(ctx, CreateExperimentSetRequest{
		Name: "atomic",
		Experiments: []CreateExperimentRequest{
			{Name: "good", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model},
			{Name: "bad", Dataset: "qa", Metrics: []string{"no_such_metric"}, Model: model},
		},
	})
	require.Error(t, err)

	// The failing member rolled back the whole set.
	sets, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sets)
	exps, err := experiments.List(ctx, ExperimentFilters{})
	require.NoError(t, err)
	assert.Empty(t, exps)
}

func TestExperimentSetService_AppendSuffixBump(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	experiments := NewExperimentService(client.Client, testRegistry(t), testJudge())
	svc := NewExperimentSetService(client.Client, experiments)
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	model := &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"}
	set, err := svc.Create(ctx, CreateExperimentSetRequest{
		Name: "set",
		Experiments: []CreateExperimentRequest{
			{Name: "set__0", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model},
			{Name: "set__5", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model},
		},
	})
	require.NoError(t, err)

	// The bump starts past the max existing suffix (5), not past the count
	// (2), so pre-existing gaps never collide.
	created, err := svc.Append(ctx, set.ID, PatchExperimentSetRequest{
		Experiments: []CreateExperimentRequest{
			{Name: "set__0", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model},
			{Name: "set__1", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model},
		},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "set__6", created[0].Name)
	assert.Equal(t, "set__7", created[1].Name)

	reloaded, err := svc.Get(ctx, set.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Edges.Experiments, 4)
}

func TestExperimentSetService_RemoveCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	experiments := NewExperimentService(client.Client, testRegistry(t), testJudge())
	svc := NewExperimentSetService(client.Client, experiments)
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	set, err := svc.Create(ctx, CreateExperimentSetRequest{
		Name: "doomed",
		Experiments: []CreateExperimentRequest{
			{Name: "e0", Dataset: "qa", Metrics: []string{"judge_exactness"},
				Model: &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, set.ID))

	exps, err := experiments.List(ctx, ExperimentFilters{})
	require.NoError(t, err)
	assert.Empty(t, exps)
	assert.ErrorIs(t, svc.Remove(ctx, set.ID), ErrNotFound)
}
