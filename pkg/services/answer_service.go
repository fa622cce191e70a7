package services

import (
	"context"
	"fmt"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/answer"
)

// AnswerService owns the idempotent upsert protocol for answers and the
// answer-phase counters.
type AnswerService struct {
	client *ent.Client
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(client *ent.Client) *AnswerService {
	return &AnswerService{client: client}
}

// Upsert inserts or overwrites the (experiment_id, num_line) slot. Applying
// the same fields twice yields the same end state as applying them once.
// A concurrent insert losing the race on the unique constraint retries as an
// update, so the constraint serializes concurrent writers.
func (s *AnswerService) Upsert(ctx context.Context, experimentID, numLine int, fields AnswerFields) (*ent.Answer, error) {
	existing, err := s.get(ctx, experimentID, numLine)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up answer slot: %w", err)
	}
	if existing != nil {
		return s.update(ctx, existing, fields)
	}

	created, err := s.insert(ctx, experimentID, numLine, fields)
	if err == nil {
		return created, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, err
	}

	// Lost the insert race; the slot exists now.
	existing, err = s.get(ctx, experimentID, numLine)
	if err != nil {
		return nil, fmt.Errorf("failed to reload answer slot after conflict: %w", err)
	}
	return s.update(ctx, existing, fields)
}

func (s *AnswerService) get(ctx context.Context, experimentID, numLine int) (*ent.Answer, error) {
	return s.client.Answer.Query().
		Where(answer.ExperimentIDEQ(experimentID), answer.NumLineEQ(numLine)).
		Only(ctx)
}

func (s *AnswerService) insert(ctx context.Context, experimentID, numLine int, fields AnswerFields) (*ent.Answer, error) {
	builder := s.client.Answer.Create().
		SetExperimentID(experimentID).
		SetNumLine(numLine).
		SetNillableAnswer(fields.Answer).
		SetNillableErrorMsg(fields.ErrorMsg).
		SetNillableExecutionTime(fields.ExecutionTime)
	if fields.Metadata != nil {
		builder.SetMetadata(fields.Metadata)
	}
	return builder.Save(ctx)
}

func (s *AnswerService) update(ctx context.Context, existing *ent.Answer, fields AnswerFields) (*ent.Answer, error) {
	update := existing.Update()
	if fields.Answer != nil {
		update.SetAnswer(*fields.Answer)
	} else {
		update.ClearAnswer()
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
	if fields.Metadata != nil {
		update.SetMetadata(fields.Metadata)
	} else {
		update.ClearMetadata()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update answer slot: %w", err)
	}
	return updated, nil
}

// Get loads the answer for one (experiment, row) slot.
func (s *AnswerService) Get(ctx context.Context, experimentID, numLine int) (*ent.Answer, error) {
	a, err := s.get(ctx, experimentID, numLine)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}
	return a, nil
}

// SuccessfulLines returns the set of row indexes holding a successful answer.
func (s *AnswerService) SuccessfulLines(ctx context.Context, experimentID int) (map[int]bool, error) {
	answers, err := s.client.Answer.Query().
		Where(
			answer.ExperimentIDEQ(experimentID),
			answer.ErrorMsgIsNil(),
			answer.AnswerNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list successful answers: %w", err)
	}

	lines := make(map[int]bool, len(answers))
	for _, a := range answers {
		lines[a.NumLine] = true
	}
	return lines, nil
}

// IncrementCounters bumps the experiment's answer counters with atomic
// update statements: num_try always, num_success only on success.
// Returns ErrNotFound when the experiment was deleted mid-flight.
func (s *AnswerService) IncrementCounters(ctx context.Context, experimentID int, success bool) error {
	update := s.client.Experiment.UpdateOneID(experimentID).AddNumTry(1)
	if success {
		update.AddNumSuccess(1)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to increment answer counters: %w", err)
	}
	return nil
}
