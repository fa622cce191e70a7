package queue

import (
	"context"
	"fmt"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/ent/experimentset"
	"github.com/etalab-ia/evalap/ent/result"
	"github.com/etalab-ia/evalap/pkg/services"
)

// RetryPlanner diffs the counters of a finished experiment set and
// re-enqueues the missing rows. Redispatch goes through the same upsert path,
// so rows whose prior outcome succeeded are unaffected.
type RetryPlanner struct {
	client     *ent.Client
	dispatcher *Dispatcher
}

// NewRetryPlanner creates a new RetryPlanner.
func NewRetryPlanner(client *ent.Client, dispatcher *Dispatcher) *RetryPlanner {
	return &RetryPlanner{client: client, dispatcher: dispatcher}
}

// Retry identifies failed rows across the set's finished experiments by
// counter inequality and redispatches them: the whole answer phase when the
// experiment needed model output and lost rows there, otherwise the missing
// observation rows per finished result.
func (p *RetryPlanner) Retry(ctx context.Context, setID int) (*services.RetryPlan, error) {
	set, err := p.client.ExperimentSet.Query().
		Where(experimentset.IDEQ(setID)).
		WithExperiments(func(q *ent.ExperimentQuery) {
			q.WithDataset().WithResults()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load experiment set: %w", err)
	}

	plan := &services.RetryPlan{ExperimentIDs: []int{}, ResultIDs: []int{}}
	for _, exp := range set.Edges.Experiments {
		if exp.ExperimentStatus != experiment.ExperimentStatusFinished {
			continue
		}

		if exp.NumTry != exp.NumSuccess && p.dispatcher.needsOutput(exp) {
			plan.ExperimentIDs = append(plan.ExperimentIDs, exp.ID)
			continue
		}

		for _, res := range exp.Edges.Results {
			if res.MetricStatus != result.MetricStatusFinished {
				continue
			}
			if res.NumTry != res.NumSuccess {
				plan.ResultIDs = append(plan.ResultIDs, res.ID)
			}
		}
	}

	for _, experimentID := range plan.ExperimentIDs {
		if err := p.dispatcher.DispatchAnswers(ctx, experimentID, true); err != nil {
			return nil, fmt.Errorf("failed to redispatch experiment %d: %w", experimentID, err)
		}
	}
	for _, resultID := range plan.ResultIDs {
		if err := p.dispatcher.DispatchResultRetry(ctx, resultID); err != nil {
			return nil, fmt.Errorf("failed to redispatch result %d: %w", resultID, err)
		}
	}

	return plan, nil
}
