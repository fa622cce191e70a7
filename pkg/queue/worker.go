package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/pkg/config"
	"github.com/etalab-ia/evalap/pkg/llm"
	"github.com/etalab-ia/evalap/pkg/metrics"
	"github.com/etalab-ia/evalap/pkg/services"
	"github.com/etalab-ia/evalap/pkg/tabular"
)

// Worker runs a blocking pull loop over the task bus. One task is one
// attempt: anything that goes wrong inside a task becomes a failure-marked
// row, never a propagated error. The retry planner decides whether to try
// again.
type Worker struct {
	id           string
	client       *ent.Client
	cfg          *config.RunnerConfig
	queue        *TaskQueue
	registry     *metrics.Registry
	llmClient    *llm.Client
	judge        *llm.Endpoint // nil when no judge endpoint is configured
	answers      *services.AnswerService
	observations *services.ObservationService
	lifecycle    *LifecycleController

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker. judge may be nil (no llm-kind
// metrics can have been validated then).
func NewWorker(id string, client *ent.Client, cfg *config.RunnerConfig, queue *TaskQueue, registry *metrics.Registry, llmClient *llm.Client, judge *llm.Endpoint, answers *services.AnswerService, observations *services.ObservationService, lifecycle *LifecycleController) *Worker {
	return &Worker{
		id:           id,
		client:       client,
		cfg:          cfg,
		queue:        queue,
		registry:     registry,
		llmClient:    llmClient,
		judge:        judge,
		answers:      answers,
		observations: observations,
		lifecycle:    lifecycle,
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker pull loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current task to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { w.cancel() })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		env, err := w.queue.Pull(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				log.Info("Worker shutting down")
				return
			}
			log.Error("Error pulling task", "error", err)
			continue
		}

		w.setStatus(WorkerStatusWorking)
		w.processTask(ctx, env)
		w.setStatus(WorkerStatusIdle)

		w.mu.Lock()
		w.tasksProcessed++
		w.mu.Unlock()
	}
}

// processTask runs one envelope under the task timeout. Tasks for entities
// deleted mid-flight are discarded quietly.
func (w *Worker) processTask(ctx context.Context, env *Envelope) {
	taskCtx, cancel := context.WithTimeout(ctx, w.cfg.TaskTimeout)
	defer cancel()

	var err error
	switch env.Kind {
	case TaskAnswer:
		err = w.processAnswerTask(taskCtx, env)
	case TaskObservation:
		err = w.processObservationTask(taskCtx, env)
	default:
		slog.Warn("Unknown task kind, discarding", "kind", env.Kind)
		return
	}

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			slog.Debug("Task target deleted mid-flight, discarding",
				"kind", env.Kind, "experiment_id", env.ExperimentID, "num_line", env.NumLine)
			return
		}
		slog.Error("Task processing failed",
			"worker_id", w.id, "kind", env.Kind,
			"experiment_id", env.ExperimentID, "num_line", env.NumLine, "error", err)
	}
}

// processAnswerTask fetches the input row, calls the model endpoint and
// upserts the outcome. Call failures land in error_msg; the upsert and the
// counter increments happen either way.
func (w *Worker) processAnswerTask(ctx context.Context, env *Envelope) error {
	exp, err := w.client.Experiment.Query().
		Where(experiment.IDEQ(env.ExperimentID)).
		WithDataset().
		WithModel().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load experiment: %w", err)
	}

	var fields services.AnswerFields
	start := time.Now()

	text, metadata, genErr := w.generateAnswer(ctx, exp, env.NumLine)
	elapsed := int(time.Since(start).Milliseconds())
	fields.ExecutionTime = &elapsed
	if genErr != nil {
		msg := genErr.Error()
		fields.ErrorMsg = &msg
	} else {
		fields.Answer = &text
		fields.Metadata = metadata
	}

	// The upsert must not die with the task timeout.
	writeCtx, cancelWrite := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelWrite()

	if _, err := w.answers.Upsert(writeCtx, env.ExperimentID, env.NumLine, fields); err != nil {
		if errors.Is(err, services.ErrNotFound) || ent.IsConstraintError(err) {
			return services.ErrNotFound
		}
		return err
	}
	if err := w.answers.IncrementCounters(writeCtx, env.ExperimentID, genErr == nil); err != nil {
		return err
	}
	return w.lifecycle.OnAnswerProgress(writeCtx, env.ExperimentID)
}

// generateAnswer resolves the query row and performs the completion call.
func (w *Worker) generateAnswer(ctx context.Context, exp *ent.Experiment, numLine int) (string, map[string]any, error) {
	if exp.Edges.Model == nil {
		return "", nil, fmt.Errorf("experiment has no model to generate with")
	}

	frame, err := tabular.FromJSON(exp.Edges.Dataset.Df)
	if err != nil {
		return "", nil, fmt.Errorf("unreadable dataset payload: %w", err)
	}
	query, err := frame.Cell(numLine, tabular.ColQuery)
	if err != nil {
		return "", nil, err
	}

	completion, err := w.llmClient.Generate(ctx, endpointFromModel(exp.Edges.Model), query)
	if err != nil {
		return "", nil, err
	}
	return completion.Text, completion.Metadata, nil
}

// processObservationTask resolves the row output, invokes the metric and
// upserts the outcome.
func (w *Worker) processObservationTask(ctx context.Context, env *Envelope) error {
	res, err := w.client.Result.Get(ctx, env.ResultID)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load result: %w", err)
	}

	exp, err := w.client.Experiment.Query().
		Where(experiment.IDEQ(env.ExperimentID)).
		WithDataset().
		WithModel().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load experiment: %w", err)
	}

	var fields services.ObservationFields
	start := time.Now()

	score, blob, obsErr := w.observe(ctx, exp, res.MetricName, env.NumLine)
	elapsed := int(time.Since(start).Milliseconds())
	fields.ExecutionTime = &elapsed
	fields.Score = score
	if blob != "" {
		fields.Observation = &blob
	}
	if obsErr != nil {
		msg := obsErr.Error()
		fields.ErrorMsg = &msg
	}

	writeCtx, cancelWrite := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelWrite()

	if _, err := w.observations.Upsert(writeCtx, env.ResultID, env.NumLine, fields); err != nil {
		if errors.Is(err, services.ErrNotFound) || ent.IsConstraintError(err) {
			return services.ErrNotFound
		}
		return err
	}
	if err := w.observations.IncrementCounters(writeCtx, env.ResultID, env.ExperimentID, obsErr == nil); err != nil {
		return err
	}
	return w.lifecycle.OnObservationProgress(writeCtx, env.ResultID)
}

// observe assembles the metric input for one row and invokes the metric.
func (w *Worker) observe(ctx context.Context, exp *ent.Experiment, metricName string, numLine int) (*float64, string, error) {
	metric, ok := w.registry.Get(metricName)
	if !ok {
		return nil, "", fmt.Errorf("metric %q is not registered", metricName)
	}

	frame, err := tabular.FromJSON(exp.Edges.Dataset.Df)
	if err != nil {
		return nil, "", fmt.Errorf("unreadable dataset payload: %w", err)
	}

	in := metrics.Input{}

	// The row output comes from the dataset when it carries one, from the
	// generated answer otherwise. The answer metadata rides along when
	// present (ops metrics read it).
	if exp.Edges.Dataset.HasOutput {
		output, err := frame.Cell(numLine, tabular.ColOutput)
		if err != nil {
			return nil, "", err
		}
		in.Output = output
	} else {
		ans, err := w.answers.Get(ctx, exp.ID, numLine)
		if err != nil {
			return nil, "", fmt.Errorf("no answer for row %d", numLine)
		}
		if ans.ErrorMsg != nil || ans.Answer == nil {
			return nil, "", fmt.Errorf("no successful answer for row %d", numLine)
		}
		in.Output = *ans.Answer
		in.Metadata = ans.Metadata
	}

	if metric.Requires(metrics.RequireQuery) {
		if in.Query, err = frame.Cell(numLine, tabular.ColQuery); err != nil {
			return nil, "", err
		}
	}
	if metric.Requires(metrics.RequireOutputTrue) {
		if in.OutputTrue, err = frame.Cell(numLine, tabular.ColOutputTrue); err != nil {
			return nil, "", err
		}
	}

	// The judge is the dedicated endpoint, never the candidate model: a model
	// grading its own output is not a judge.
	var judge metrics.Judge
	if w.judge != nil {
		judge = &llm.JudgeAdapter{Client: w.llmClient, Endpoint: *w.judge}
	}

	return w.invokeMetric(ctx, metric, in, judge)
}

// invokeMetric shields the worker from panicking metric implementations.
func (w *Worker) invokeMetric(ctx context.Context, metric metrics.Metric, in metrics.Input, judge metrics.Judge) (score *float64, blob string, err error) {
	defer func() {
		if r := recover(); r != nil {
			score, blob = nil, ""
			err = fmt.Errorf("metric %q panicked: %v", metric.Name, r)
		}
	}()
	return metric.Compute(ctx, in, judge)
}

func endpointFromModel(mdl *ent.Model) llm.Endpoint {
	ep := llm.Endpoint{
		Name:           mdl.Name,
		BaseURL:        mdl.BaseURL,
		APIKey:         mdl.APIKey,
		SamplingParams: mdl.SamplingParams,
	}
	if mdl.PromptSystem != nil {
		ep.PromptSystem = *mdl.PromptSystem
	}
	return ep
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.lastActivity = time.Now()
}
