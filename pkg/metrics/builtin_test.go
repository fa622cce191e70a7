package metrics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtins(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	RegisterBuiltins(r)
	r.Freeze()
	return r
}

func TestBuiltins_Registered(t *testing.T) {
	r := builtins(t)
	for _, name := range []string{
		"nb_tokens_prompt", "nb_tokens_completion", "nb_tool_calls",
		"generation_time", "output_length", "judge_exactness", "judge_notator",
	} {
		_, ok := r.Get(name)
		assert.True(t, ok, "metric %s should be registered", name)
	}
}

func TestOpsMetrics_ReadMetadata(t *testing.T) {
	r := builtins(t)
	m, _ := r.Get("nb_tokens_completion")

	score, _, err := m.Compute(context.Background(), Input{
		Output:   "hello",
		Metadata: map[string]any{"nb_tokens_completion": 42.0},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, 42.0, *score)
}

func TestOpsMetrics_MissingMetadata(t *testing.T) {
	r := builtins(t)
	m, _ := r.Get("generation_time")

	// No metadata bag at all (dataset-provided output): null score, no error.
	score, _, err := m.Compute(context.Background(), Input{Output: "hello"}, nil)
	require.NoError(t, err)
	assert.Nil(t, score)

	// Present but null field behaves the same.
	score, _, err = m.Compute(context.Background(), Input{
		Output:   "hello",
		Metadata: map[string]any{"generation_time": nil},
	}, nil)
	require.NoError(t, err)
	assert.Nil(t, score)

	// A present field that is not numeric is still a failure.
	_, _, err = m.Compute(context.Background(), Input{
		Output:   "hello",
		Metadata: map[string]any{"generation_time": "fast"},
	}, nil)
	assert.Error(t, err)
}

func TestJudgeExactness(t *testing.T) {
	r := builtins(t)
	m, _ := r.Get("judge_exactness")

	tests := []struct {
		output     string
		outputTrue string
		want       float64
	}{
		{"Paris", "paris", 1},
		{"  Paris  ", "paris", 1},
		{"paris france", "Paris   France", 1},
		{"Lyon", "Paris", 0},
		{"", "Paris", 0},
	}
	for _, tt := range tests {
		score, _, err := m.Compute(context.Background(), Input{
			Output:     tt.output,
			OutputTrue: tt.outputTrue,
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, score)
		assert.Equal(t, tt.want, *score, "output=%q", tt.output)
	}
}

func TestOutputLength(t *testing.T) {
	r := builtins(t)
	m, _ := r.Get("output_length")

	score, _, err := m.Compute(context.Background(), Input{Output: "three little words"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, *score)
}

type fakeJudge struct {
	reply string
	err   error
}

func (f *fakeJudge) Complete(_ context.Context, _, _ string) (string, error) {
	return f.reply, f.err
}

func TestJudgeNotator(t *testing.T) {
	r := builtins(t)
	m, _ := r.Get("judge_notator")
	in := Input{Query: "q", Output: "a"}

	t.Run("parses leading grade", func(t *testing.T) {
		score, obs, err := m.Compute(context.Background(), in, &fakeJudge{reply: "8 - solid answer"})
		require.NoError(t, err)
		assert.Equal(t, 8.0, *score)
		assert.Contains(t, obs, "solid answer")
	})

	t.Run("clamps out-of-range grades", func(t *testing.T) {
		score, _, err := m.Compute(context.Background(), in, &fakeJudge{reply: "15/10"})
		require.NoError(t, err)
		assert.Equal(t, 10.0, *score)
	})

	t.Run("fails without judge", func(t *testing.T) {
		_, _, err := m.Compute(context.Background(), in, nil)
		assert.Error(t, err)
	})

	t.Run("fails on judge error", func(t *testing.T) {
		_, _, err := m.Compute(context.Background(), in, &fakeJudge{err: fmt.Errorf("boom")})
		assert.Error(t, err)
	})

	t.Run("fails without grade in reply", func(t *testing.T) {
		_, _, err := m.Compute(context.Background(), in, &fakeJudge{reply: "no grade here"})
		assert.Error(t, err)
	})
}
