package services

import (
	"context"
	"testing"

	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/ent/result"
	testdb "github.com/etalab-ia/evalap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperimentService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	svc := NewExperimentService(client.Client, testRegistry(t), testJudge())
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)
	_, err = datasets.Create(ctx, CreateDatasetRequest{
		Name: "with-output",
		Df:   `[{"query": "q0", "output": "o0"}, {"query": "q1", "output": "o1"}]`,
	})
	require.NoError(t, err)

	model := &ModelSpec{Name: "gpt-test", BaseURL: "http://llm", APIKey: "k"}

	t.Run("creates pending experiment with pending results", func(t *testing.T) {
		exp, err := svc.Create(ctx, CreateExperimentRequest{
			Name:    "happy",
			Dataset: "qa",
			Metrics: []string{"judge_exactness", "generation_time"},
			Model:   model,
		})
		require.NoError(t, err)
		assert.Equal(t, experiment.ExperimentStatusPending, exp.ExperimentStatus)
		assert.Equal(t, 2, exp.NumMetrics)
		assert.Zero(t, exp.NumTry)
		assert.Zero(t, exp.NumSuccess)
		require.Len(t, exp.Edges.Results, 2)
		for _, res := range exp.Edges.Results {
			assert.Equal(t, result.MetricStatusPending, res.MetricStatus)
		}
	})

	t.Run("rejects unknown metric", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateExperimentRequest{
			Name:    "unknown-metric",
			Dataset: "qa",
			Metrics: []string{"no_such_metric"},
			Model:   model,
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("rejects output_true metric without column", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateExperimentRequest{
			Name:    "missing-truth",
			Dataset: "with-output",
			Metrics: []string{"judge_exactness"},
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("rejects output metric without model or output column", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateExperimentRequest{
			Name:    "no-source-of-output",
			Dataset: "qa",
			Metrics: []string{"nb_tokens_completion"},
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("rejects model combined with output column", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateExperimentRequest{
			Name:    "ambiguous",
			Dataset: "with-output",
			Metrics: []string{"nb_tokens_completion"},
			Model:   model,
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("rejects llm metric without judge endpoint", func(t *testing.T) {
		noJudge := NewExperimentService(client.Client, testRegistry(t), nil)
		_, err := noJudge.Create(ctx, CreateExperimentRequest{
			Name:    "no-judge",
			Dataset: "qa",
			Metrics: []string{"judge_notator"},
			Model:   model,
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("accepts llm metric with judge endpoint", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateExperimentRequest{
			Name:    "with-judge",
			Dataset: "qa",
			Metrics: []string{"judge_notator"},
			Model:   model,
		})
		assert.NoError(t, err)
	})

	t.Run("rejects missing dataset", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateExperimentRequest{
			Name:    "no-dataset",
			Dataset: "nope",
			Metrics: []string{"judge_exactness"},
			Model:   model,
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("nothing persisted on validation failure", func(t *testing.T) {
		experiments, err := svc.List(ctx, ExperimentFilters{})
		require.NoError(t, err)
		for _, exp := range experiments {
			assert.NotContains(t,
				[]string{"unknown-metric", "missing-truth", "no-source-of-output", "ambiguous"},
				exp.Name)
		}
	})
}

func TestExperimentService_ListFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	svc := NewExperimentService(client.Client, testRegistry(t), testJudge())
	sets := NewExperimentSetService(client.Client, svc)
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	model := &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"}

	set, err := sets.Create(ctx, CreateExperimentSetRequest{
		Name: "myset",
		Experiments: []CreateExperimentRequest{
			{Name: "in-set-1", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model},
			{Name: "in-set-2", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model},
		},
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateExperimentRequest{
		Name: "orphan-1", Dataset: "qa", Metrics: []string{"judge_exactness"}, Model: model,
	})
	require.NoError(t, err)

	bySet, err := svc.List(ctx, ExperimentFilters{SetID: &set.ID})
	require.NoError(t, err)
	assert.Len(t, bySet, 2)

	orphans, err := svc.List(ctx, ExperimentFilters{Orphan: true})
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "orphan-1", orphans[0].Name)

	limited, err := svc.List(ctx, ExperimentFilters{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestExperimentService_ApplyPatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	svc := NewExperimentService(client.Client, testRegistry(t), testJudge())
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	exp, err := svc.Create(ctx, CreateExperimentRequest{
		Name:    "patchable",
		Dataset: "qa",
		Metrics: []string{"judge_exactness"},
		Model:   &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"},
	})
	require.NoError(t, err)

	t.Run("adds new metric as pending result", func(t *testing.T) {
		patched, touched, err := svc.ApplyPatch(ctx, exp.ID, PatchExperimentRequest{
			Metrics: []string{"output_length"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"output_length"}, touched)
		assert.Equal(t, 2, patched.NumMetrics)
		require.Len(t, patched.Edges.Results, 2)
	})

	t.Run("resets existing metric to pending", func(t *testing.T) {
		// Simulate a finished result.
		res, err := client.Result.Query().
			Where(result.ExperimentIDEQ(exp.ID), result.MetricNameEQ("judge_exactness")).
			Only(ctx)
		require.NoError(t, err)
		require.NoError(t, res.Update().SetMetricStatus(result.MetricStatusFinished).Exec(ctx))

		_, touched, err := svc.ApplyPatch(ctx, exp.ID, PatchExperimentRequest{
			Metrics: []string{"judge_exactness"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"judge_exactness"}, touched)

		res, err = client.Result.Get(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, result.MetricStatusPending, res.MetricStatus)
	})

	t.Run("rejected while running", func(t *testing.T) {
		require.NoError(t, client.Experiment.UpdateOneID(exp.ID).
			SetExperimentStatus(experiment.ExperimentStatusRunningAnswers).
			Exec(ctx))

		_, _, err := svc.ApplyPatch(ctx, exp.ID, PatchExperimentRequest{
			Metrics: []string{"output_length"},
		})
		assert.ErrorIs(t, err, ErrExperimentRunning)
	})
}

func TestExperimentService_RemoveCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	svc := NewExperimentService(client.Client, testRegistry(t), testJudge())
	answers := NewAnswerService(client.Client)
	observations := NewObservationService(client.Client)
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	exp, err := svc.Create(ctx, CreateExperimentRequest{
		Name:    "doomed",
		Dataset: "qa",
		Metrics: []string{"judge_exactness"},
		Model:   &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"},
	})
	require.NoError(t, err)
	resultID := exp.Edges.Results[0].ID

	text := "an answer"
	_, err = answers.Upsert(ctx, exp.ID, 0, AnswerFields{Answer: &text})
	require.NoError(t, err)
	score := 1.0
	_, err = observations.Upsert(ctx, resultID, 0, ObservationFields{Score: &score})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, exp.ID))

	// No dangling answers, results or observations.
	count, err := client.Answer.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = client.Result.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = client.Observation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.Remove(ctx, exp.ID), ErrNotFound)
}
