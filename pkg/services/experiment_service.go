package services

import (
	"context"
	"fmt"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/dataset"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/ent/result"
	"github.com/etalab-ia/evalap/pkg/config"
	"github.com/etalab-ia/evalap/pkg/metrics"
)

// ExperimentService manages the experiment lifecycle records: creation with
// metric/dataset compatibility validation, listing, patching and deletion.
type ExperimentService struct {
	client   *ent.Client
	registry *metrics.Registry
	judge    *config.JudgeConfig
}

// NewExperimentService creates a new ExperimentService. judge may be nil or
// unconfigured; llm-kind metrics are then rejected at validation.
func NewExperimentService(client *ent.Client, registry *metrics.Registry, judge *config.JudgeConfig) *ExperimentService {
	return &ExperimentService{client: client, registry: registry, judge: judge}
}

// Create validates and persists an experiment with its pending Results.
// Nothing is written when validation fails.
func (s *ExperimentService) Create(ctx context.Context, req CreateExperimentRequest) (*ent.Experiment, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exp, err := s.createTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Get(ctx, exp.ID, true, false, false)
}

// createTx persists one experiment inside an existing transaction. Shared
// with ExperimentSetService so a whole set commits atomically.
func (s *ExperimentService) createTx(ctx context.Context, tx *ent.Tx, req CreateExperimentRequest) (*ent.Experiment, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Metrics) == 0 {
		return nil, NewValidationError("metrics", "at least one metric is required")
	}
	if req.Dataset == "" {
		return nil, NewValidationError("dataset", "required")
	}

	ds, err := tx.Dataset.Query().Where(dataset.NameEQ(req.Dataset)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("dataset", "dataset not found")
		}
		return nil, fmt.Errorf("failed to resolve dataset: %w", err)
	}

	if err := s.validateMetrics(req.Metrics, ds, req.Model != nil); err != nil {
		return nil, err
	}

	var modelID *int
	if req.Model != nil {
		mdl, err := createModelTx(ctx, tx, req.Model)
		if err != nil {
			return nil, err
		}
		modelID = &mdl.ID
	}

	builder := tx.Experiment.Create().
		SetName(req.Name).
		SetDatasetID(ds.ID).
		SetExperimentStatus(experiment.ExperimentStatusPending).
		SetNumMetrics(len(req.Metrics))
	if req.Readme != "" {
		builder.SetReadme(req.Readme)
	}
	if modelID != nil {
		builder.SetModelID(*modelID)
	}
	if req.ExperimentSetID != nil {
		builder.SetExperimentSetID(*req.ExperimentSetID)
	}

	exp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create experiment: %w", err)
	}

	for _, metricName := range req.Metrics {
		_, err := tx.Result.Create().
			SetExperimentID(exp.ID).
			SetMetricName(metricName).
			SetMetricStatus(result.MetricStatusPending).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, NewValidationError("metrics", fmt.Sprintf("duplicate metric %q", metricName))
			}
			return nil, fmt.Errorf("failed to create result for %q: %w", metricName, err)
		}
	}

	return exp, nil
}

func createModelTx(ctx context.Context, tx *ent.Tx, spec *ModelSpec) (*ent.Model, error) {
	if spec.Name == "" {
		return nil, NewValidationError("model.name", "required")
	}
	if spec.BaseURL == "" {
		return nil, NewValidationError("model.base_url", "required")
	}

	builder := tx.Model.Create().
		SetName(spec.Name).
		SetBaseURL(spec.BaseURL).
		SetAPIKey(spec.APIKey)
	if spec.PromptSystem != "" {
		builder.SetPromptSystem(spec.PromptSystem)
	}
	if spec.SamplingParams != nil {
		builder.SetSamplingParams(spec.SamplingParams)
	}
	if spec.ExtraParams != nil {
		builder.SetExtraParams(spec.ExtraParams)
	}

	mdl, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return mdl, nil
}

// validateMetrics checks every requested metric against the dataset columns
// and the presence of a model, per the compatibility rules.
func (s *ExperimentService) validateMetrics(names []string, ds *ent.Dataset, hasModel bool) error {
	var needsQuery, needsOutput, needsOutputTrue bool
	for _, name := range names {
		m, ok := s.registry.Get(name)
		if !ok {
			return NewValidationError("metrics", fmt.Sprintf("unknown metric %q", name))
		}
		if m.Kind == metrics.KindLLM && !s.judge.Enabled() {
			return NewValidationError("metrics", fmt.Sprintf(
				"metric %q needs a judge endpoint: set JUDGE_MODEL, JUDGE_BASE_URL and JUDGE_API_KEY",
				name))
		}
		needsQuery = needsQuery || m.Requires(metrics.RequireQuery)
		needsOutput = needsOutput || m.Requires(metrics.RequireOutput)
		needsOutputTrue = needsOutputTrue || m.Requires(metrics.RequireOutputTrue)
	}

	if needsQuery && !ds.HasQuery {
		return NewValidationError("metrics", "you need to provide a query for this metric")
	}
	if needsOutput && !hasModel && !ds.HasOutput {
		return NewValidationError("metrics",
			"you need to provide an answer for this metric: either set a model to generate it or provide a dataset with the 'output' field")
	}
	if needsOutput && !ds.HasOutput && !ds.HasQuery {
		return NewValidationError("metrics",
			"you need to provide an answer for this metric: the dataset needs a 'query' field to generate it or an 'output' field")
	}
	if needsOutputTrue && !ds.HasOutputTrue {
		return NewValidationError("metrics",
			"you need to provide a ground truth for this metric: the dataset needs an 'output_true' field")
	}
	if ds.HasOutput && hasModel {
		return NewValidationError("model",
			"you can't give at the same time a model and a dataset with an answer ('output' column); give either one or the other")
	}
	return nil
}

// Get fetches an experiment, optionally loading its results, answers and
// dataset edges.
func (s *ExperimentService) Get(ctx context.Context, id int, withResults, withAnswers, withDataset bool) (*ent.Experiment, error) {
	query := s.client.Experiment.Query().
		Where(experiment.IDEQ(id)).
		WithModel()
	if withResults {
		query.WithResults()
	}
	if withAnswers {
		query.WithAnswers()
	}
	if withDataset {
		query.WithDataset()
	}

	exp, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get experiment: %w", err)
	}
	return exp, nil
}

// List returns experiments with their results, filtered by set membership.
func (s *ExperimentService) List(ctx context.Context, filters ExperimentFilters) ([]*ent.Experiment, error) {
	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := s.client.Experiment.Query().
		WithResults().
		Order(ent.Asc(experiment.FieldID)).
		Limit(limit)
	if filters.SetID != nil {
		query.Where(experiment.ExperimentSetIDEQ(*filters.SetID))
	}
	if filters.Orphan {
		query.Where(experiment.ExperimentSetIDIsNil())
	}

	experiments, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	return experiments, nil
}

// ApplyPatch adds metrics to an idle experiment (new Results created pending,
// existing ones reset to pending) and updates the readme. With RerunMetrics
// set, every Result of the experiment is reset to pending. Rerun dispatch is
// the caller's concern. Returns the names of the requested metrics whose
// Results were created or reset.
func (s *ExperimentService) ApplyPatch(ctx context.Context, id int, req PatchExperimentRequest) (*ent.Experiment, []string, error) {
	exp, err := s.Get(ctx, id, true, false, false)
	if err != nil {
		return nil, nil, err
	}
	if exp.ExperimentStatus != experiment.ExperimentStatusPending &&
		exp.ExperimentStatus != experiment.ExperimentStatusFinished {
		return nil, nil, ErrExperimentRunning
	}

	if len(req.Metrics) > 0 {
		ds, err := s.client.Dataset.Get(ctx, exp.DatasetID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		if err := s.validateMetrics(req.Metrics, ds, exp.ModelID != nil); err != nil {
			return nil, nil, err
		}
	}

	var touched []string
	for _, metricName := range req.Metrics {
		existing, err := s.client.Result.Query().
			Where(result.ExperimentIDEQ(id), result.MetricNameEQ(metricName)).
			Only(ctx)
		switch {
		case err == nil:
			err = existing.Update().
				SetMetricStatus(result.MetricStatusPending).
				Exec(ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to reset result %q: %w", metricName, err)
			}
		case ent.IsNotFound(err):
			_, err = s.client.Result.Create().
				SetExperimentID(id).
				SetMetricName(metricName).
				SetMetricStatus(result.MetricStatusPending).
				Save(ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create result %q: %w", metricName, err)
			}
		default:
			return nil, nil, fmt.Errorf("failed to look up result %q: %w", metricName, err)
		}
		touched = append(touched, metricName)
	}

	if req.RerunMetrics {
		err := s.client.Result.Update().
			Where(result.ExperimentIDEQ(id)).
			SetMetricStatus(result.MetricStatusPending).
			Exec(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to reset results: %w", err)
		}
	}

	update := s.client.Experiment.UpdateOneID(id)
	if req.Readme != nil {
		update.SetReadme(*req.Readme)
	}
	if len(touched) > 0 {
		count, err := s.client.Result.Query().Where(result.ExperimentIDEQ(id)).Count(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to count results: %w", err)
		}
		update.SetNumMetrics(count)
	}
	if err := update.Exec(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to patch experiment: %w", err)
	}

	exp, err = s.Get(ctx, id, true, false, false)
	if err != nil {
		return nil, nil, err
	}
	return exp, touched, nil
}

// Remove deletes an experiment; answers, results and observations go with it.
func (s *ExperimentService) Remove(ctx context.Context, id int) error {
	if err := s.client.Experiment.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete experiment: %w", err)
	}
	return nil
}
