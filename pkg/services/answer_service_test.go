package services

import (
	"context"
	"sync"
	"testing"

	"github.com/etalab-ia/evalap/ent"
	testdb "github.com/etalab-ia/evalap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExperiment(t *testing.T, client *ent.Client) *ent.Experiment {
	t.Helper()
	ctx := context.Background()
	datasets := NewDatasetService(client)
	experiments := NewExperimentService(client, testRegistry(t), testJudge())

	_, err := datasets.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
	require.NoError(t, err)

	exp, err := experiments.Create(ctx, CreateExperimentRequest{
		Name:    "exp",
		Dataset: "qa",
		Metrics: []string{"judge_exactness"},
		Model:   &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"},
	})
	require.NoError(t, err)
	return exp
}

func TestAnswerService_UpsertIdempotence(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnswerService(client.Client)
	exp := setupExperiment(t, client.Client)
	ctx := context.Background()

	text := "generated"
	elapsed := 120
	fields := AnswerFields{
		Answer:        &text,
		ExecutionTime: &elapsed,
		Metadata:      map[string]any{"nb_tokens_completion": 5.0},
	}

	first, err := svc.Upsert(ctx, exp.ID, 0, fields)
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, exp.ID, 0, fields)
	require.NoError(t, err)

	// Applying twice yields the same end state as applying once: same row,
	// same fields.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, *first.Answer, *second.Answer)

	count, err := client.Answer.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAnswerService_UpsertOverwrites(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnswerService(client.Client)
	exp := setupExperiment(t, client.Client)
	ctx := context.Background()

	errMsg := "connection refused"
	_, err := svc.Upsert(ctx, exp.ID, 1, AnswerFields{ErrorMsg: &errMsg})
	require.NoError(t, err)

	// A retried row fully replaces the failed outcome.
	text := "now it works"
	updated, err := svc.Upsert(ctx, exp.ID, 1, AnswerFields{Answer: &text})
	require.NoError(t, err)
	require.NotNil(t, updated.Answer)
	assert.Equal(t, "now it works", *updated.Answer)
	assert.Nil(t, updated.ErrorMsg)
}

func TestAnswerService_ConcurrentUpsertSameSlot(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnswerService(client.Client)
	exp := setupExperiment(t, client.Client)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			text := "writer"
			_, err := svc.Upsert(ctx, exp.ID, 2, AnswerFields{Answer: &text})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Exactly one row for the slot after all writers return.
	count, err := client.Answer.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAnswerService_Counters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnswerService(client.Client)
	exp := setupExperiment(t, client.Client)
	ctx := context.Background()

	require.NoError(t, svc.IncrementCounters(ctx, exp.ID, true))
	require.NoError(t, svc.IncrementCounters(ctx, exp.ID, false))
	require.NoError(t, svc.IncrementCounters(ctx, exp.ID, true))

	reloaded, err := client.Experiment.Get(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.NumTry)
	assert.Equal(t, 2, reloaded.NumSuccess)

	// 0 ≤ num_success ≤ num_try ≤ dataset.size
	assert.LessOrEqual(t, reloaded.NumSuccess, reloaded.NumTry)
	assert.LessOrEqual(t, reloaded.NumTry, 3)

	assert.ErrorIs(t, svc.IncrementCounters(ctx, 99999, true), ErrNotFound)
}

func TestAnswerService_SuccessfulLines(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAnswerService(client.Client)
	exp := setupExperiment(t, client.Client)
	ctx := context.Background()

	ok := "fine"
	bad := "boom"
	_, err := svc.Upsert(ctx, exp.ID, 0, AnswerFields{Answer: &ok})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, exp.ID, 1, AnswerFields{ErrorMsg: &bad})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, exp.ID, 2, AnswerFields{Answer: &ok})
	require.NoError(t, err)

	lines, err := svc.SuccessfulLines(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{0: true, 2: true}, lines)
}

func TestObservationService_UpsertAndCounters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewObservationService(client.Client)
	exp := setupExperiment(t, client.Client)
	resultID := exp.Edges.Results[0].ID
	ctx := context.Background()

	score := 1.0
	first, err := svc.Upsert(ctx, resultID, 0, ObservationFields{Score: &score})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, resultID, 0, ObservationFields{Score: &score})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Observation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.IncrementCounters(ctx, resultID, exp.ID, true))
	require.NoError(t, svc.IncrementCounters(ctx, resultID, exp.ID, false))

	res, err := client.Result.Get(ctx, resultID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NumTry)
	assert.Equal(t, 1, res.NumSuccess)

	// Experiment-level observation counters aggregate across results.
	reloaded, err := client.Experiment.Get(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.NumObservationTry)
	assert.Equal(t, 1, reloaded.NumObservationSuccess)
}
