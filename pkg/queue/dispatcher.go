package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/ent/result"
	"github.com/etalab-ia/evalap/pkg/metrics"
	"github.com/etalab-ia/evalap/pkg/services"
)

// Dispatcher enumerates pending work rows for an experiment phase and
// enqueues one task per row.
type Dispatcher struct {
	client       *ent.Client
	queue        *TaskQueue
	registry     *metrics.Registry
	answers      *services.AnswerService
	observations *services.ObservationService
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(client *ent.Client, queue *TaskQueue, registry *metrics.Registry, answers *services.AnswerService, observations *services.ObservationService) *Dispatcher {
	return &Dispatcher{
		client:       client,
		queue:        queue,
		registry:     registry,
		answers:      answers,
		observations: observations,
	}
}

// NeedsOutput reports whether any requested metric requires an output the
// dataset does not already contain. This single predicate selects the
// starting phase of an experiment.
func (d *Dispatcher) NeedsOutput(ctx context.Context, experimentID int) (bool, error) {
	exp, err := d.loadExperiment(ctx, experimentID)
	if err != nil {
		return false, err
	}
	return d.needsOutput(exp), nil
}

func (d *Dispatcher) needsOutput(exp *ent.Experiment) bool {
	if exp.Edges.Dataset.HasOutput {
		return false
	}
	for _, res := range exp.Edges.Results {
		if m, ok := d.registry.Get(res.MetricName); ok && m.Requires(metrics.RequireOutput) {
			return true
		}
	}
	return false
}

// DispatchExperiment starts a freshly created experiment: answer phase when
// model output must be generated, observation phase directly otherwise.
func (d *Dispatcher) DispatchExperiment(ctx context.Context, experimentID int) error {
	exp, err := d.loadExperiment(ctx, experimentID)
	if err != nil {
		return err
	}
	if d.needsOutput(exp) {
		return d.DispatchAnswers(ctx, experimentID, false)
	}
	return d.DispatchObservations(ctx, experimentID, false)
}

// DispatchAnswers transitions the experiment into the answer phase. A fresh
// start resets the counters to zero and enqueues one task per dataset row; a
// retry drops only the failed attempts (num_try = num_success) and enqueues
// one task per row missing a successful answer, so re-enqueued rows are
// counted once more.
func (d *Dispatcher) DispatchAnswers(ctx context.Context, experimentID int, retry bool) error {
	exp, err := d.loadExperiment(ctx, experimentID)
	if err != nil {
		return err
	}

	update := d.client.Experiment.UpdateOneID(experimentID).
		SetExperimentStatus(experiment.ExperimentStatusRunningAnswers)
	if retry {
		update.SetNumTry(exp.NumSuccess)
	} else {
		update.SetNumTry(0).SetNumSuccess(0)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enter answer phase: %w", err)
	}

	done, err := d.answers.SuccessfulLines(ctx, experimentID)
	if err != nil {
		return err
	}

	// A fresh start regenerates every row (counters start from zero); a retry
	// re-enqueues only rows without a successful answer.
	enqueued := 0
	for numLine := 0; numLine < exp.Edges.Dataset.Size; numLine++ {
		if retry && done[numLine] {
			continue
		}
		err := d.queue.Push(ctx, Envelope{
			Kind:         TaskAnswer,
			ExperimentID: experimentID,
			NumLine:      numLine,
		})
		if err != nil {
			return fmt.Errorf("failed to enqueue answer task: %w", err)
		}
		enqueued++
	}

	slog.Info("Answer phase dispatched",
		"experiment_id", experimentID, "tasks", enqueued, "retry", retry)
	return nil
}

// DispatchObservations transitions the experiment into the metric phase and,
// for every pending result, enqueues one task per dataset row on a fresh
// dispatch, or one task per row missing a successful observation on a retry.
// Answer-phase completion is a precondition: within one
// experiment, answer tasks are observed as completed before any observation
// task is enqueued.
func (d *Dispatcher) DispatchObservations(ctx context.Context, experimentID int, retry bool) error {
	exp, err := d.loadExperiment(ctx, experimentID)
	if err != nil {
		return err
	}

	if err := d.client.Experiment.UpdateOneID(experimentID).
		SetExperimentStatus(experiment.ExperimentStatusRunningMetrics).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to enter metric phase: %w", err)
	}

	dispatched := 0
	for _, res := range exp.Edges.Results {
		if res.MetricStatus != result.MetricStatusPending {
			continue
		}
		n, err := d.dispatchResult(ctx, exp, res, retry)
		if err != nil {
			return err
		}
		dispatched += n
	}

	if err := d.syncObservationCounters(ctx, experimentID); err != nil {
		return err
	}

	slog.Info("Metric phase dispatched",
		"experiment_id", experimentID, "tasks", dispatched, "retry", retry)
	return nil
}

// DispatchResultRetry re-enqueues the missing rows of one finished result.
// The owning experiment re-enters the metric phase.
func (d *Dispatcher) DispatchResultRetry(ctx context.Context, resultID int) error {
	res, err := d.client.Result.Get(ctx, resultID)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load result: %w", err)
	}
	exp, err := d.loadExperiment(ctx, res.ExperimentID)
	if err != nil {
		return err
	}

	if err := d.client.Result.UpdateOneID(resultID).
		SetMetricStatus(result.MetricStatusPending).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset result: %w", err)
	}
	if err := d.client.Experiment.UpdateOneID(exp.ID).
		SetExperimentStatus(experiment.ExperimentStatusRunningMetrics).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to enter metric phase: %w", err)
	}

	if _, err := d.dispatchResult(ctx, exp, res, true); err != nil {
		return err
	}
	return d.syncObservationCounters(ctx, exp.ID)
}

// dispatchResult marks one result running and enqueues its missing rows.
func (d *Dispatcher) dispatchResult(ctx context.Context, exp *ent.Experiment, res *ent.Result, retry bool) (int, error) {
	update := d.client.Result.UpdateOneID(res.ID).
		SetMetricStatus(result.MetricStatusRunning)
	if retry {
		update.SetNumTry(res.NumSuccess)
	} else {
		update.SetNumTry(0).SetNumSuccess(0)
	}
	if err := update.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to start result %d: %w", res.ID, err)
	}

	done, err := d.observations.SuccessfulLines(ctx, res.ID)
	if err != nil {
		return 0, err
	}

	enqueued := 0
	for numLine := 0; numLine < exp.Edges.Dataset.Size; numLine++ {
		if retry && done[numLine] {
			continue
		}
		err := d.queue.Push(ctx, Envelope{
			Kind:         TaskObservation,
			ExperimentID: exp.ID,
			NumLine:      numLine,
			ResultID:     res.ID,
			MetricName:   res.MetricName,
		})
		if err != nil {
			return enqueued, fmt.Errorf("failed to enqueue observation task: %w", err)
		}
		enqueued++
	}
	return enqueued, nil
}

// syncObservationCounters rebuilds the experiment's aggregated observation
// counters from its results, after per-result resets.
func (d *Dispatcher) syncObservationCounters(ctx context.Context, experimentID int) error {
	results, err := d.client.Result.Query().
		Where(result.ExperimentIDEQ(experimentID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	var try, success int
	for _, res := range results {
		try += res.NumTry
		success += res.NumSuccess
	}

	err = d.client.Experiment.UpdateOneID(experimentID).
		SetNumObservationTry(try).
		SetNumObservationSuccess(success).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync observation counters: %w", err)
	}
	return nil
}

func (d *Dispatcher) loadExperiment(ctx context.Context, experimentID int) (*ent.Experiment, error) {
	exp, err := d.client.Experiment.Query().
		Where(experiment.IDEQ(experimentID)).
		WithDataset().
		WithResults().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load experiment: %w", err)
	}
	return exp, nil
}
