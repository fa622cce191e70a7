package services

import (
	"context"
	"errors"
	"testing"

	"github.com/etalab-ia/evalap/pkg/config"
	"github.com/etalab-ia/evalap/pkg/metrics"
	testdb "github.com/etalab-ia/evalap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *metrics.Registry {
	t.Helper()
	r := metrics.NewRegistry()
	metrics.RegisterBuiltins(r)
	r.Freeze()
	return r
}

func testJudge() *config.JudgeConfig {
	return &config.JudgeConfig{Model: "judge", BaseURL: "http://judge", APIKey: "k"}
}

const qaPayload = `[{"query": "q0", "output_true": "t0"}, {"query": "q1", "output_true": "t1"}, {"query": "q2", "output_true": "t2"}]`

func TestDatasetService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewDatasetService(client.Client)
	ctx := context.Background()

	t.Run("derives column flags and size", func(t *testing.T) {
		ds, err := svc.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
		require.NoError(t, err)
		assert.True(t, ds.HasQuery)
		assert.False(t, ds.HasOutput)
		assert.True(t, ds.HasOutputTrue)
		assert.Equal(t, 3, ds.Size)
	})

	t.Run("round-trips the payload", func(t *testing.T) {
		ds, err := svc.Create(ctx, CreateDatasetRequest{Name: "roundtrip", Df: qaPayload})
		require.NoError(t, err)

		reloaded, err := svc.Get(ctx, ds.ID)
		require.NoError(t, err)
		assert.Equal(t, qaPayload, reloaded.Df)
	})

	t.Run("rejects payload without query or output", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateDatasetRequest{
			Name: "bad",
			Df:   `[{"output_true": "t0"}]`,
		})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("rejects unreadable payload", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateDatasetRequest{Name: "bad2", Df: "not json"})
		var validErr *ValidationError
		assert.ErrorAs(t, err, &validErr)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateDatasetRequest{Name: "qa", Df: qaPayload})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestDatasetService_Patch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewDatasetService(client.Client)
	ctx := context.Background()

	ds, err := svc.Create(ctx, CreateDatasetRequest{Name: "patchme", Df: qaPayload})
	require.NoError(t, err)

	newName := "renamed"
	readme := "notes"
	patched, err := svc.Patch(ctx, ds.ID, PatchDatasetRequest{Name: &newName, Readme: &readme})
	require.NoError(t, err)
	assert.Equal(t, "renamed", patched.Name)
	require.NotNil(t, patched.Readme)
	assert.Equal(t, "notes", *patched.Readme)

	// The payload and derived fields are untouched.
	assert.Equal(t, qaPayload, patched.Df)
	assert.Equal(t, 3, patched.Size)

	_, err = svc.Patch(ctx, 99999, PatchDatasetRequest{Readme: &readme})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDatasetService_RemoveReferenced(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewDatasetService(client.Client)
	expSvc := NewExperimentService(client.Client, testRegistry(t), testJudge())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateDatasetRequest{Name: "refd", Df: qaPayload})
	require.NoError(t, err)

	_, err = expSvc.Create(ctx, CreateExperimentRequest{
		Name:    "exp-1",
		Dataset: "refd",
		Metrics: []string{"judge_exactness"},
		Model:   &ModelSpec{Name: "m", BaseURL: "http://llm", APIKey: "k"},
	})
	require.NoError(t, err)

	ds, err := svc.GetByName(ctx, "refd")
	require.NoError(t, err)

	err = svc.Remove(ctx, ds.ID)
	var refErr *ReferencedError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, 1, refErr.Count)

	// Unreferenced datasets delete fine.
	free, err := svc.Create(ctx, CreateDatasetRequest{Name: "free", Df: qaPayload})
	require.NoError(t, err)
	assert.NoError(t, svc.Remove(ctx, free.ID))
	_, err = svc.Get(ctx, free.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
