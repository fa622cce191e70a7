package queue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/ent/result"
	"github.com/etalab-ia/evalap/pkg/config"
	"github.com/etalab-ia/evalap/pkg/llm"
	"github.com/etalab-ia/evalap/pkg/metrics"
	"github.com/etalab-ia/evalap/pkg/services"
	testdb "github.com/etalab-ia/evalap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLLM is an OpenAI-compatible completion endpoint that echoes the user
// message back as the answer. Requests whose user message contains a failing
// marker are rejected with a 500 while failing is set.
type mockLLM struct {
	server  *httptest.Server
	failing atomic.Bool
	marker  string
}

func newMockLLM(t *testing.T, marker string) *mockLLM {
	t.Helper()
	m := &mockLLM{marker: marker}
	m.failing.Store(true)

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var user string
		for _, msg := range req.Messages {
			if msg.Role == "user" {
				user = msg.Content
			}
		}

		if m.failing.Load() && m.marker != "" && strings.Contains(user, m.marker) {
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
			return
		}

		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "mock",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": user},
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     7,
				"completion_tokens": 3,
				"total_tokens":      10,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(m.server.Close)
	return m
}

// engine bundles a fully wired execution engine over a test database.
type engine struct {
	client       *ent.Client
	registry     *metrics.Registry
	queue        *TaskQueue
	dispatcher   *Dispatcher
	lifecycle    *LifecycleController
	pool         *WorkerPool
	retryPlanner *RetryPlanner

	datasets     *services.DatasetService
	experiments  *services.ExperimentService
	sets         *services.ExperimentSetService
	answers      *services.AnswerService
	observations *services.ObservationService
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	registry := metrics.NewRegistry()
	metrics.RegisterBuiltins(registry)
	registry.Freeze()

	cfg := config.DefaultRunnerConfig()
	cfg.MaxConcurrentTasks = 4
	cfg.LLMTimeout = 10 * time.Second
	cfg.TaskTimeout = 15 * time.Second

	answers := services.NewAnswerService(client)
	observations := services.NewObservationService(client)

	taskQueue := NewTaskQueue(cfg.QueueCapacity)
	taskQueue.Start()

	dispatcher := NewDispatcher(client, taskQueue, registry, answers, observations)
	lifecycle := NewLifecycleController(client, dispatcher)
	llmClient := llm.NewClient(cfg.LLMTimeout)
	pool := NewWorkerPool("test-runner", client, cfg, taskQueue,
		registry, llmClient, nil, answers, observations, lifecycle)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	t.Cleanup(func() {
		taskQueue.Close()
		pool.Stop()
		cancel()
	})

	judgeCfg := &config.JudgeConfig{Model: "judge", BaseURL: "http://judge", APIKey: "k"}
	experiments := services.NewExperimentService(client, registry, judgeCfg)
	return &engine{
		client:       client,
		registry:     registry,
		queue:        taskQueue,
		dispatcher:   dispatcher,
		lifecycle:    lifecycle,
		pool:         pool,
		retryPlanner: NewRetryPlanner(client, dispatcher),
		datasets:     services.NewDatasetService(client),
		experiments:  experiments,
		sets:         services.NewExperimentSetService(client, experiments),
		answers:      answers,
		observations: observations,
	}
}

// waitFinished polls until the experiment reaches finished status.
func (e *engine) waitFinished(t *testing.T, experimentID int) *ent.Experiment {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		exp, err := e.client.Experiment.Get(context.Background(), experimentID)
		require.NoError(t, err)
		if exp.ExperimentStatus == experiment.ExperimentStatusFinished {
			return exp
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("experiment %d did not finish in time", experimentID)
	return nil
}

func TestEngine_HappyPathWithModel(t *testing.T) {
	e := newEngine(t)
	mock := newMockLLM(t, "")
	ctx := context.Background()

	// output_true mirrors the echoing mock, so judge_exactness scores 1.
	_, err := e.datasets.Create(ctx, services.CreateDatasetRequest{
		Name: "qa",
		Df:   `[{"query": "q0", "output_true": "q0"}, {"query": "q1", "output_true": "q1"}, {"query": "q2", "output_true": "q2"}]`,
	})
	require.NoError(t, err)

	exp, err := e.experiments.Create(ctx, services.CreateExperimentRequest{
		Name:    "happy",
		Dataset: "qa",
		Metrics: []string{"judge_exactness"},
		Model:   &services.ModelSpec{Name: "mock", BaseURL: mock.server.URL, APIKey: "k"},
	})
	require.NoError(t, err)
	require.NoError(t, e.dispatcher.DispatchExperiment(ctx, exp.ID))

	final := e.waitFinished(t, exp.ID)
	assert.Equal(t, 3, final.NumTry)
	assert.Equal(t, 3, final.NumSuccess)
	assert.Equal(t, 3, final.NumObservationTry)
	assert.Equal(t, 3, final.NumObservationSuccess)

	answers, err := e.client.Answer.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, answers, 3)
	for _, a := range answers {
		require.NotNil(t, a.Answer)
		assert.Nil(t, a.ErrorMsg)
		assert.NotNil(t, a.ExecutionTime)
		assert.EqualValues(t, 3, a.Metadata["nb_tokens_completion"])
	}

	results, err := e.client.Result.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, result.MetricStatusFinished, results[0].MetricStatus)
	assert.Equal(t, 3, results[0].NumTry)
	assert.Equal(t, 3, results[0].NumSuccess)

	observations, err := e.client.Observation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, observations, 3)
	for _, o := range observations {
		require.NotNil(t, o.Score)
		assert.Equal(t, 1.0, *o.Score)
	}
}

func TestEngine_AnswerPhaseSkippedWithoutModel(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	_, err := e.datasets.Create(ctx, services.CreateDatasetRequest{
		Name: "precomputed",
		Df:   `[{"query": "q0", "output": "one two"}, {"query": "q1", "output": "three"}]`,
	})
	require.NoError(t, err)

	exp, err := e.experiments.Create(ctx, services.CreateExperimentRequest{
		Name:    "no-model",
		Dataset: "precomputed",
		Metrics: []string{"output_length"},
	})
	require.NoError(t, err)
	require.NoError(t, e.dispatcher.DispatchExperiment(ctx, exp.ID))

	final := e.waitFinished(t, exp.ID)

	// The answer phase never ran; the output column fed the metric directly.
	assert.Zero(t, final.NumTry)
	assert.Zero(t, final.NumSuccess)
	assert.Equal(t, 2, final.NumObservationTry)
	assert.Equal(t, 2, final.NumObservationSuccess)

	count, err := e.client.Answer.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	observations, err := e.client.Observation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, observations, 2)
	scores := map[int]float64{}
	for _, o := range observations {
		require.NotNil(t, o.Score)
		scores[o.NumLine] = *o.Score
	}
	assert.Equal(t, map[int]float64{0: 2, 1: 1}, scores)
}

func TestEngine_OpsMetricOverDatasetOutput(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	// Dataset-provided outputs carry no generation metadata: the ops metric
	// records a null score per row, and every observation still succeeds.
	_, err := e.datasets.Create(ctx, services.CreateDatasetRequest{
		Name: "precomputed-ops",
		Df:   `[{"query": "q0", "output": "o0"}, {"query": "q1", "output": "o1"}]`,
	})
	require.NoError(t, err)

	exp, err := e.experiments.Create(ctx, services.CreateExperimentRequest{
		Name:    "ops-no-model",
		Dataset: "precomputed-ops",
		Metrics: []string{"nb_tokens_completion"},
	})
	require.NoError(t, err)
	require.NoError(t, e.dispatcher.DispatchExperiment(ctx, exp.ID))

	final := e.waitFinished(t, exp.ID)

	// Answer phase skipped, every observation counted as a success.
	assert.Zero(t, final.NumTry)
	assert.Equal(t, 2, final.NumObservationTry)
	assert.Equal(t, 2, final.NumObservationSuccess)

	observations, err := e.client.Observation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, observations, 2)
	for _, o := range observations {
		assert.Nil(t, o.Score)
		assert.Nil(t, o.ErrorMsg)
	}
}

func TestEngine_PartialFailureAndRetry(t *testing.T) {
	e := newEngine(t)
	mock := newMockLLM(t, "FAIL")
	ctx := context.Background()

	// Rows 1 and 3 carry the failing marker.
	_, err := e.datasets.Create(ctx, services.CreateDatasetRequest{
		Name: "flaky",
		Df: `[{"query": "q0", "output_true": "q0"},
		     {"query": "q1 FAIL", "output_true": "q1 FAIL"},
		     {"query": "q2", "output_true": "q2"},
		     {"query": "q3 FAIL", "output_true": "q3 FAIL"},
		     {"query": "q4", "output_true": "q4"}]`,
	})
	require.NoError(t, err)

	set, err := e.sets.Create(ctx, services.CreateExperimentSetRequest{
		Name: "retryset",
		Experiments: []services.CreateExperimentRequest{
			{
				Name:    "retryset__0",
				Dataset: "flaky",
				Metrics: []string{"judge_exactness"},
				Model:   &services.ModelSpec{Name: "mock", BaseURL: mock.server.URL, APIKey: "k"},
			},
		},
	})
	require.NoError(t, err)
	expID := set.Edges.Experiments[0].ID
	require.NoError(t, e.dispatcher.DispatchExperiment(ctx, expID))

	final := e.waitFinished(t, expID)
	assert.Equal(t, 5, final.NumTry)
	assert.Equal(t, 3, final.NumSuccess)

	// Remember the successful rows to prove the retry leaves them alone.
	before, err := e.answers.SuccessfulLines(ctx, expID)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{0: true, 2: true, 4: true}, before)
	beforeRows := map[int]int{}
	answersBefore, err := e.client.Answer.Query().All(ctx)
	require.NoError(t, err)
	for _, a := range answersBefore {
		if a.ErrorMsg == nil {
			beforeRows[a.NumLine] = a.ID
		}
	}

	// The endpoint recovers; the retry planner re-enqueues rows 1 and 3.
	mock.failing.Store(false)
	plan, err := e.retryPlanner.Retry(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{expID}, plan.ExperimentIDs)
	assert.Empty(t, plan.ResultIDs)

	final = e.waitFinished(t, expID)
	assert.Equal(t, 5, final.NumTry)
	assert.Equal(t, 5, final.NumSuccess)

	// Rows 0, 2, 4 kept their original rows; 1 and 3 now succeeded too.
	after, err := e.client.Answer.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, after, 5)
	for _, a := range after {
		assert.Nil(t, a.ErrorMsg, "row %d should have recovered", a.NumLine)
		if id, ok := beforeRows[a.NumLine]; ok {
			assert.Equal(t, id, a.ID, "successful row %d was rewritten", a.NumLine)
		}
	}

	// A second retry pass fixes the observations that failed while the
	// answers were missing.
	plan, err = e.retryPlanner.Retry(ctx, set.ID)
	require.NoError(t, err)
	assert.Empty(t, plan.ExperimentIDs)
	require.Len(t, plan.ResultIDs, 1)

	final = e.waitFinished(t, expID)
	res, err := e.client.Result.Get(ctx, plan.ResultIDs[0])
	require.NoError(t, err)
	assert.Equal(t, 5, res.NumTry)
	assert.Equal(t, 5, res.NumSuccess)
	assert.Equal(t, result.MetricStatusFinished, res.MetricStatus)
	assert.Equal(t, 5, final.NumObservationSuccess)
}

func TestEngine_RetryIsNoOpWhenComplete(t *testing.T) {
	e := newEngine(t)
	mock := newMockLLM(t, "")
	ctx := context.Background()

	_, err := e.datasets.Create(ctx, services.CreateDatasetRequest{
		Name: "clean",
		Df:   `[{"query": "q0", "output_true": "q0"}]`,
	})
	require.NoError(t, err)

	set, err := e.sets.Create(ctx, services.CreateExperimentSetRequest{
		Name: "cleanset",
		Experiments: []services.CreateExperimentRequest{
			{
				Name:    "cleanset__0",
				Dataset: "clean",
				Metrics: []string{"judge_exactness"},
				Model:   &services.ModelSpec{Name: "mock", BaseURL: mock.server.URL, APIKey: "k"},
			},
		},
	})
	require.NoError(t, err)
	expID := set.Edges.Experiments[0].ID
	require.NoError(t, e.dispatcher.DispatchExperiment(ctx, expID))
	e.waitFinished(t, expID)

	plan, err := e.retryPlanner.Retry(ctx, set.ID)
	require.NoError(t, err)
	assert.Empty(t, plan.ExperimentIDs)
	assert.Empty(t, plan.ResultIDs)

	// Counters are unchanged by the no-op plan.
	final, err := e.client.Experiment.Get(ctx, expID)
	require.NoError(t, err)
	assert.Equal(t, 1, final.NumTry)
	assert.Equal(t, 1, final.NumSuccess)

	_, err = e.retryPlanner.Retry(ctx, 99999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEngine_DeletedExperimentTasksAreDiscarded(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	// A task for an experiment that no longer exists fails its lookups
	// quietly and leaves no rows behind.
	require.NoError(t, e.queue.Push(ctx, Envelope{
		Kind:         TaskAnswer,
		ExperimentID: 424242,
		NumLine:      0,
	}))
	require.NoError(t, e.queue.Push(ctx, Envelope{
		Kind:         TaskObservation,
		ExperimentID: 424242,
		NumLine:      0,
		ResultID:     424242,
		MetricName:   "judge_exactness",
	}))

	waitIdle(t, e, 10*time.Second)

	count, err := e.client.Answer.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = e.client.Observation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// waitIdle waits until the bus is drained and every worker is idle.
func waitIdle(t *testing.T, e *engine, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		health := e.pool.Health()
		if health.QueueDepth == 0 && health.ActiveWorkers == 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("engine did not go idle within %v", timeout)
}
