package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/ent/result"
)

// LifecycleController transitions experiment and result statuses and drives
// the answer → observation phase handoff. Transitions are driven by the
// persisted counters, never by in-memory completion events, so they remain
// correct across restarts.
type LifecycleController struct {
	client     *ent.Client
	dispatcher *Dispatcher
}

// NewLifecycleController creates a new LifecycleController.
func NewLifecycleController(client *ent.Client, dispatcher *Dispatcher) *LifecycleController {
	return &LifecycleController{client: client, dispatcher: dispatcher}
}

// OnAnswerProgress is signalled after every answer-counter increment. When
// the attempt counter reaches the dataset size, the claiming caller hands the
// experiment off to the metric phase. The claim is a conditional update so
// that concurrent workers finishing the last rows race safely.
func (c *LifecycleController) OnAnswerProgress(ctx context.Context, experimentID int) error {
	exp, err := c.client.Experiment.Query().
		Where(experiment.IDEQ(experimentID)).
		WithDataset().
		WithResults().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil // deleted mid-flight
		}
		return fmt.Errorf("failed to load experiment: %w", err)
	}

	if exp.NumTry < exp.Edges.Dataset.Size {
		return nil
	}

	claimed, err := c.client.Experiment.Update().
		Where(
			experiment.IDEQ(experimentID),
			experiment.ExperimentStatusEQ(experiment.ExperimentStatusRunningAnswers),
		).
		SetExperimentStatus(experiment.ExperimentStatusRunningMetrics).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim phase handoff: %w", err)
	}
	if claimed == 0 {
		return nil // another worker handed off already
	}

	slog.Info("Answer phase complete",
		"experiment_id", experimentID,
		"num_try", exp.NumTry, "num_success", exp.NumSuccess)

	// No pending result to run (e.g. an answers-only rerun): terminal.
	pending := false
	for _, res := range exp.Edges.Results {
		if res.MetricStatus == result.MetricStatusPending {
			pending = true
			break
		}
	}
	if !pending {
		return c.finishExperiment(ctx, experimentID)
	}

	return c.dispatcher.DispatchObservations(ctx, experimentID, false)
}

// OnObservationProgress is signalled after every observation-counter
// increment. It finishes the owning result when its attempts cover the
// dataset, then finishes the experiment once every result is covered.
func (c *LifecycleController) OnObservationProgress(ctx context.Context, resultID int) error {
	res, err := c.client.Result.Get(ctx, resultID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil // deleted mid-flight
		}
		return fmt.Errorf("failed to load result: %w", err)
	}

	exp, err := c.client.Experiment.Query().
		Where(experiment.IDEQ(res.ExperimentID)).
		WithDataset().
		WithResults().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load experiment: %w", err)
	}
	size := exp.Edges.Dataset.Size

	if res.NumTry >= size && res.MetricStatus == result.MetricStatusRunning {
		_, err := c.client.Result.Update().
			Where(
				result.IDEQ(resultID),
				result.MetricStatusEQ(result.MetricStatusRunning),
			).
			SetMetricStatus(result.MetricStatusFinished).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to finish result: %w", err)
		}
		slog.Info("Result finished",
			"result_id", resultID, "metric_name", res.MetricName,
			"num_try", res.NumTry, "num_success", res.NumSuccess)
	}

	// The experiment finishes when every result covers the dataset, even when
	// some observations failed (num_try > num_success).
	for _, sibling := range exp.Edges.Results {
		try := sibling.NumTry
		if sibling.ID == resultID {
			try = res.NumTry
		}
		if try < size {
			return nil
		}
	}
	return c.finishExperiment(ctx, exp.ID)
}

// finishExperiment marks the experiment finished and forces every owning
// result terminal, regardless of per-row failures.
func (c *LifecycleController) finishExperiment(ctx context.Context, experimentID int) error {
	claimed, err := c.client.Experiment.Update().
		Where(
			experiment.IDEQ(experimentID),
			experiment.ExperimentStatusNEQ(experiment.ExperimentStatusFinished),
		).
		SetExperimentStatus(experiment.ExperimentStatusFinished).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish experiment: %w", err)
	}
	if claimed == 0 {
		return nil
	}

	if _, err := c.client.Result.Update().
		Where(result.ExperimentIDEQ(experimentID)).
		SetMetricStatus(result.MetricStatusFinished).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to finish results: %w", err)
	}

	slog.Info("Experiment finished", "experiment_id", experimentID)
	return nil
}
