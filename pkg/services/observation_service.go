package services

import (
	"context"
	"fmt"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/observation"
)

// ObservationService owns the idempotent upsert protocol for observations
// and the metric-phase counters.
type ObservationService struct {
	client *ent.Client
}

// NewObservationService creates a new ObservationService.
func NewObservationService(client *ent.Client) *ObservationService {
	return &ObservationService{client: client}
}

// Upsert inserts or overwrites the (result_id, num_line) slot, with the same
// conflict-retry contract as answer upserts.
func (s *ObservationService) Upsert(ctx context.Context, resultID, numLine int, fields ObservationFields) (*ent.Observation, error) {
	existing, err := s.get(ctx, resultID, numLine)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up observation slot: %w", err)
	}
	if existing != nil {
		return s.update(ctx, existing, fields)
	}

	created, err := s.insert(ctx, resultID, numLine, fields)
	if err == nil {
		return created, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, err
	}

	existing, err = s.get(ctx, resultID, numLine)
	if err != nil {
		return nil, fmt.Errorf("failed to reload observation slot after conflict: %w", err)
	}
	return s.update(ctx, existing, fields)
}

func (s *ObservationService) get(ctx context.Context, resultID, numLine int) (*ent.Observation, error) {
	return s.client.Observation.Query().
		Where(observation.ResultIDEQ(resultID), observation.NumLineEQ(numLine)).
		Only(ctx)
}

func (s *ObservationService) insert(ctx context.Context, resultID, numLine int, fields ObservationFields) (*ent.Observation, error) {
	return s.client.Observation.Create().
		SetResultID(resultID).
		SetNumLine(numLine).
		SetNillableScore(fields.Score).
		SetNillableObservation(fields.Observation).
		SetNillableErrorMsg(fields.ErrorMsg).
		SetNillableExecutionTime(fields.ExecutionTime).
		Save(ctx)
}

func (s *ObservationService) update(ctx context.Context, existing *ent.Observation, fields ObservationFields) (*ent.Observation, error) {
	update := existing.Update()
	if fields.Score != nil {
		update.SetScore(*fields.Score)
	} else {
		update.ClearScore()
	}
	if fields.Observation != nil {
		update.SetObservation(*fields.Observation)
	} else {
		update.ClearObservation()
	}
	if fields.ErrorMsg != nil {
		update.SetErrorMsg(*fields.ErrorMsg)
	} else {
		update.ClearErrorMsg()
	}
	if fields.ExecutionTime != nil {
		update.SetExecutionTime(*fields.ExecutionTime)
	} else {
		update.ClearExecutionTime()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update observation slot: %w", err)
	}
	return updated, nil
}

// SuccessfulLines returns the set of row indexes holding a successful
// observation for the result.
func (s *ObservationService) SuccessfulLines(ctx context.Context, resultID int) (map[int]bool, error) {
	observations, err := s.client.Observation.Query().
		Where(
			observation.ResultIDEQ(resultID),
			observation.ErrorMsgIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list successful observations: %w", err)
	}

	lines := make(map[int]bool, len(observations))
	for _, o := range observations {
		lines[o.NumLine] = true
	}
	return lines, nil
}

// IncrementCounters bumps the result's counters and mirrors the attempt into
// the owning experiment's aggregated observation counters, both as atomic
// update statements. Returns ErrNotFound when the owning rows were deleted
// mid-flight.
func (s *ObservationService) IncrementCounters(ctx context.Context, resultID, experimentID int, success bool) error {
	resultUpdate := s.client.Result.UpdateOneID(resultID).AddNumTry(1)
	if success {
		resultUpdate.AddNumSuccess(1)
	}
	if err := resultUpdate.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to increment result counters: %w", err)
	}

	expUpdate := s.client.Experiment.UpdateOneID(experimentID).AddNumObservationTry(1)
	if success {
		expUpdate.AddNumObservationSuccess(1)
	}
	if err := expUpdate.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to increment experiment observation counters: %w", err)
	}
	return nil
}
