package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/etalab-ia/evalap/pkg/config"
	"github.com/etalab-ia/evalap/pkg/llm"
	"github.com/etalab-ia/evalap/pkg/metrics"
	"github.com/etalab-ia/evalap/pkg/queue"
	"github.com/etalab-ia/evalap/pkg/services"
	testdb "github.com/etalab-ia/evalap/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires a full server over a test database and serves it on a
// random port. Returns the base URL.
func newTestServer(t *testing.T) string {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	registry := metrics.NewRegistry()
	metrics.RegisterBuiltins(registry)
	registry.Freeze()

	cfg := config.DefaultRunnerConfig()
	cfg.MaxConcurrentTasks = 2
	cfg.LLMTimeout = 2 * time.Second
	cfg.TaskTimeout = 3 * time.Second

	answers := services.NewAnswerService(client)
	observations := services.NewObservationService(client)

	taskQueue := queue.NewTaskQueue(cfg.QueueCapacity)
	taskQueue.Start()

	dispatcher := queue.NewDispatcher(client, taskQueue, registry, answers, observations)
	lifecycle := queue.NewLifecycleController(client, dispatcher)
	pool := queue.NewWorkerPool("api-test", client, cfg, taskQueue,
		registry, llm.NewClient(cfg.LLMTimeout), nil, answers, observations, lifecycle)

	poolCtx, cancel := context.WithCancel(context.Background())
	pool.Start(poolCtx)
	t.Cleanup(func() {
		taskQueue.Close()
		pool.Stop()
		cancel()
	})

	judgeCfg := &config.JudgeConfig{Model: "judge", BaseURL: "http://judge", APIKey: "k"}
	experiments := services.NewExperimentService(client, registry, judgeCfg)
	server := NewServer(
		dbClient,
		registry,
		services.NewDatasetService(client),
		experiments,
		services.NewExperimentSetService(client, experiments),
		services.NewLeaderboardService(client),
		dispatcher,
		queue.NewRetryPlanner(client, dispatcher),
		pool,
	)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.StartWithListener(ln) }()
	t.Cleanup(func() {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		_ = server.Shutdown(shutdownCtx)
	})

	return fmt.Sprintf("http://%s", ln.Addr())
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestAPI_DatasetLifecycle(t *testing.T) {
	base := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, base+"/dataset", map[string]any{
		"name": "qa",
		"df":   `[{"query": "q0", "output_true": "t0"}]`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created DatasetResponse
	require.NoError(t, json.Unmarshal(body, &created))
	assert.True(t, created.HasQuery)
	assert.True(t, created.HasOutputTrue)
	assert.Equal(t, 1, created.Size)
	assert.Empty(t, created.Df)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, base+"/dataset", map[string]any{
			"name": "qa",
			"df":   `[{"query": "q0"}]`,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("invalid payload rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, base+"/dataset", map[string]any{
			"name": "bad",
			"df":   "not json",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("fetch with payload", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet,
			fmt.Sprintf("%s/dataset/%d?with_df=true", base, created.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var full DatasetResponse
		require.NoError(t, json.Unmarshal(body, &full))
		assert.JSONEq(t, `[{"query": "q0", "output_true": "t0"}]`, full.Df)
	})

	t.Run("missing dataset is 404", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodGet, base+"/dataset/99999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("rename via patch", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPatch,
			fmt.Sprintf("%s/dataset/%d", base, created.ID),
			map[string]any{"name": "qa-renamed"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var patched DatasetResponse
		require.NoError(t, json.Unmarshal(body, &patched))
		assert.Equal(t, "qa-renamed", patched.Name)
	})
}

func TestAPI_ListMetrics(t *testing.T) {
	base := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, base+"/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []metrics.Metric
	require.NoError(t, json.Unmarshal(body, &listed))
	names := map[string]bool{}
	for _, m := range listed {
		names[m.Name] = true
	}
	assert.True(t, names["judge_exactness"])
	assert.True(t, names["generation_time"])
}

func TestAPI_ExperimentValidationRejection(t *testing.T) {
	base := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, base+"/dataset", map[string]any{
		"name": "query-only",
		"df":   `[{"query": "q0"}]`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// judge_exactness needs output_true; the dataset has none: 400, no tasks,
	// no experiment persisted.
	resp, _ = doJSON(t, http.MethodPost, base+"/experiment", map[string]any{
		"name":    "invalid",
		"dataset": "query-only",
		"metrics": []string{"judge_exactness"},
		"model":   map[string]any{"name": "m", "base_url": "http://llm", "api_key": "k"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, base+"/experiments", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var experiments []ExperimentResponse
	require.NoError(t, json.Unmarshal(body, &experiments))
	assert.Empty(t, experiments)
}

func TestAPI_ExperimentWithoutModelRuns(t *testing.T) {
	base := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, base+"/dataset", map[string]any{
		"name": "precomputed",
		"df":   `[{"query": "q0", "output": "one two"}, {"query": "q1", "output": "three"}]`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, base+"/experiment", map[string]any{
		"name":    "no-model",
		"dataset": "precomputed",
		"metrics": []string{"output_length"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created ExperimentResponse
	require.NoError(t, json.Unmarshal(body, &created))

	deadline := time.Now().Add(15 * time.Second)
	for {
		resp, body = doJSON(t, http.MethodGet,
			fmt.Sprintf("%s/experiment/%d?with_results=true", base, created.ID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var fetched ExperimentResponse
		require.NoError(t, json.Unmarshal(body, &fetched))
		if fetched.ExperimentStatus == "finished" {
			assert.Equal(t, 2, fetched.NumObservationTry)
			assert.Equal(t, 2, fetched.NumObservationSuccess)
			require.Len(t, fetched.Results, 1)
			assert.Equal(t, "finished", fetched.Results[0].MetricStatus)
			break
		}
		require.True(t, time.Now().Before(deadline), "experiment did not finish in time")
		time.Sleep(50 * time.Millisecond)
	}
}

func TestAPI_DeleteReferencedDataset(t *testing.T) {
	base := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, base+"/dataset", map[string]any{
		"name": "refd",
		"df":   `[{"query": "q0", "output": "o0"}]`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var ds DatasetResponse
	require.NoError(t, json.Unmarshal(body, &ds))

	resp, _ = doJSON(t, http.MethodPost, base+"/experiment", map[string]any{
		"name":    "holds-ref",
		"dataset": "refd",
		"metrics": []string{"output_length"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/dataset/%d", base, ds.ID), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Leaderboard(t *testing.T) {
	base := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, base+"/leaderboard?metric_name=judge_exactness", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var board services.Leaderboard
	require.NoError(t, json.Unmarshal(body, &board))
	assert.Equal(t, "judge_exactness", board.MetricName)
	assert.Empty(t, board.Entries)
}

func TestAPI_Health(t *testing.T) {
	base := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, base+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, "healthy", health.Status)
	require.NotNil(t, health.Runner)
	assert.Equal(t, 2, health.Runner.TotalWorkers)
}
