package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/ent/experimentset"
)

var suffixPattern = regexp.MustCompile(`__(\d+)$`)

// ExperimentSetService manages experiment sets: direct or grid construction,
// suffix-safe appends, cascade deletion.
type ExperimentSetService struct {
	client      *ent.Client
	experiments *ExperimentService
}

// NewExperimentSetService creates a new ExperimentSetService.
func NewExperimentSetService(client *ent.Client, experiments *ExperimentService) *ExperimentSetService {
	return &ExperimentSetService{client: client, experiments: experiments}
}

// Create persists a set and all its member experiments in one transaction.
// Members come from an explicit list or from a grid, never both.
func (s *ExperimentSetService) Create(ctx context.Context, req CreateExperimentSetRequest) (*ent.ExperimentSet, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Experiments != nil && req.CV != nil {
		return nil, NewValidationError("cv", "give either an experiments or a cv parameter, not both")
	}

	members := req.Experiments
	if req.CV != nil {
		built, err := buildGridExperiments(req.Name, req.CV, 0)
		if err != nil {
			return nil, err
		}
		members = built
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.ExperimentSet.Create().SetName(req.Name)
	if req.Readme != "" {
		builder.SetReadme(req.Readme)
	}
	set, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create experiment set: %w", err)
	}

	for i := range members {
		members[i].ExperimentSetID = &set.ID
		if _, err := s.experiments.createTx(ctx, tx, members[i]); err != nil {
			return nil, fmt.Errorf("experiment %q: %w", members[i].Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Get(ctx, set.ID)
}

// buildGridExperiments expands a grid into named create requests.
// Names follow {set}__{i}, i starting at startIndex.
func buildGridExperiments(setName string, cv *GridCV, startIndex int) ([]CreateExperimentRequest, error) {
	repeat := cv.Repeat
	if repeat < 1 {
		repeat = 1
	}

	var members []CreateExperimentRequest
	i := startIndex
	for _, point := range BuildParamGrid(cv.CommonParams, cv.GridParams) {
		for r := 0; r < repeat; r++ {
			req, err := decodeExperimentParams(point)
			if err != nil {
				return nil, err
			}
			req.Name = fmt.Sprintf("%s__%d", setName, i)
			members = append(members, req)
			i++
		}
	}
	if len(members) == 0 {
		return nil, NewValidationError("cv", "the grid expands to zero experiments")
	}
	return members, nil
}

// Get fetches a set with its experiments and their results.
func (s *ExperimentSetService) Get(ctx context.Context, id int) (*ent.ExperimentSet, error) {
	set, err := s.client.ExperimentSet.Query().
		Where(experimentset.IDEQ(id)).
		WithExperiments(func(q *ent.ExperimentQuery) {
			q.WithResults().Order(ent.Asc(experiment.FieldID))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experiment set: %w", err)
	}
	return set, nil
}

// List returns all sets with their experiments.
func (s *ExperimentSetService) List(ctx context.Context) ([]*ent.ExperimentSet, error) {
	sets, err := s.client.ExperimentSet.Query().
		WithExperiments(func(q *ent.ExperimentQuery) {
			q.WithResults()
		}).
		Order(ent.Asc(experimentset.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiment sets: %w", err)
	}
	return sets, nil
}

// Append adds experiments to an existing set and returns the created rows.
// Appended names carrying a __N suffix are renumbered from max existing N + 1
// so earlier deletions never cause collisions.
func (s *ExperimentSetService) Append(ctx context.Context, id int, req PatchExperimentSetRequest) ([]*ent.Experiment, error) {
	if req.Experiments != nil && req.CV != nil {
		return nil, NewValidationError("cv", "give either an experiments or a cv parameter, not both")
	}

	set, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Readme != nil {
		if err := s.client.ExperimentSet.UpdateOneID(id).SetReadme(*req.Readme).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to update readme: %w", err)
		}
	}

	members := req.Experiments
	if req.CV != nil {
		built, err := buildGridExperiments(set.Name, req.CV, 0)
		if err != nil {
			return nil, err
		}
		members = built
	}
	if len(members) == 0 {
		return nil, nil
	}

	next := maxNameSuffix(set.Edges.Experiments) + 1
	for i := range members {
		if members[i].Name == "" {
			members[i].Name = fmt.Sprintf("%s__%d", set.Name, next)
			next++
		} else if suffixPattern.MatchString(members[i].Name) {
			members[i].Name = suffixPattern.ReplaceAllString(members[i].Name, fmt.Sprintf("__%d", next))
			next++
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	created := make([]*ent.Experiment, 0, len(members))
	for i := range members {
		members[i].ExperimentSetID = &set.ID
		exp, err := s.experiments.createTx(ctx, tx, members[i])
		if err != nil {
			return nil, fmt.Errorf("experiment %q: %w", members[i].Name, err)
		}
		created = append(created, exp)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// Remove deletes a set; its experiments cascade.
func (s *ExperimentSetService) Remove(ctx context.Context, id int) error {
	if err := s.client.ExperimentSet.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete experiment set: %w", err)
	}
	return nil
}

// maxNameSuffix returns the highest __N suffix among the given experiments,
// or -1 when none carries one.
func maxNameSuffix(experiments []*ent.Experiment) int {
	maxN := -1
	for _, exp := range experiments {
		match := suffixPattern.FindStringSubmatch(exp.Name)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n > maxN {
			maxN = n
		}
	}
	return maxN
}
