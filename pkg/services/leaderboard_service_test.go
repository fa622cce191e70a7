package services

import (
	"context"
	"testing"

	testdb "github.com/etalab-ia/evalap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_Ranking(t *testing.T) {
	client := testdb.NewTestClient(t)
	datasets := NewDatasetService(client.Client)
	experiments := NewExperimentService(client.Client, testRegistry(t), testJudge())
	observations := NewObservationService(client.Client)
	svc := NewLeaderboardService(client.Client)
	ctx := context.Background()

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	score := func(expName string, modelName string, notator float64, exactness float64) {
		exp, err := experiments.Create(ctx, CreateExperimentRequest{
			Name:    expName,
			Dataset: "qa",
			Metrics: []string{"judge_notator", "judge_exactness"},
			Model:   &ModelSpec{Name: modelName, BaseURL: "http://llm", APIKey: "k"},
		})
		require.NoError(t, err)
		for _, res := range exp.Edges.Results {
			s := notator
			if res.MetricName == "judge_exactness" {
				s = exactness
			}
			_, err := observations.Upsert(ctx, res.ID, 0, ObservationFields{Score: &s})
			require.NoError(t, err)
		}
	}

	score("exp-low", "model-low", 4, 0)
	score("exp-high", "model-high", 9, 1)

	board, err := svc.Get(ctx, "judge_notator", "", 10)
	require.NoError(t, err)
	require.Len(t, board.Entries, 2)

	// Ranked by best judge_notator observation, descending.
	assert.Equal(t, "model-high", board.Entries[0].ModelName)
	assert.Equal(t, 9.0, board.Entries[0].MainMetricScore)
	assert.Equal(t, "model-low", board.Entries[1].ModelName)

	// Secondary metrics ride along per entry.
	assert.Equal(t, 1.0, board.Entries[0].OtherMetrics["judge_exactness"])
	assert.Equal(t, "qa", board.Entries[0].DatasetName)

	t.Run("dataset filter", func(t *testing.T) {
		board, err := svc.Get(ctx, "judge_notator", "nope", 10)
		require.NoError(t, err)
		assert.Empty(t, board.Entries)
	})

	t.Run("limit", func(t *testing.T) {
		board, err := svc.Get(ctx, "judge_notator", "", 1)
		require.NoError(t, err)
		assert.Len(t, board.Entries, 1)
		assert.Equal(t, "model-high", board.Entries[0].ModelName)
	})

	t.Run("default metric", func(t *testing.T) {
		board, err := svc.Get(ctx, "", "", 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultLeaderboardMetric, board.MetricName)
	})
}
