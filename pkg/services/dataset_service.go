package services

import (
	"context"
	"fmt"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/dataset"
	"github.com/etalab-ia/evalap/ent/experiment"
	"github.com/etalab-ia/evalap/pkg/tabular"
)

// DatasetService manages dataset rows. Payloads are immutable after creation.
type DatasetService struct {
	client *ent.Client
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(client *ent.Client) *DatasetService {
	return &DatasetService{client: client}
}

// Create validates the payload, derives the column flags and row count, and
// persists the dataset.
func (s *DatasetService) Create(ctx context.Context, req CreateDatasetRequest) (*ent.Dataset, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Df == "" {
		return nil, NewValidationError("df", "required")
	}

	frame, err := tabular.FromJSON(req.Df)
	if err != nil {
		return nil, NewValidationError("df", fmt.Sprintf("should be a readable dataframe: %v", err))
	}

	hasQuery := frame.HasColumn(tabular.ColQuery)
	hasOutput := frame.HasColumn(tabular.ColOutput)
	hasOutputTrue := frame.HasColumn(tabular.ColOutputTrue)

	if !hasQuery && !hasOutput {
		return nil, NewValidationError("df", "your dataset needs at least a column 'query' or 'output'")
	}

	builder := s.client.Dataset.Create().
		SetName(req.Name).
		SetDf(req.Df).
		SetHasQuery(hasQuery).
		SetHasOutput(hasOutput).
		SetHasOutputTrue(hasOutputTrue).
		SetSize(frame.Len())
	if req.Readme != "" {
		builder.SetReadme(req.Readme)
	}

	ds, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create dataset: %w", err)
	}
	return ds, nil
}

// Get fetches a dataset by id.
func (s *DatasetService) Get(ctx context.Context, id int) (*ent.Dataset, error) {
	ds, err := s.client.Dataset.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return ds, nil
}

// GetByName fetches a dataset by its unique name.
func (s *DatasetService) GetByName(ctx context.Context, name string) (*ent.Dataset, error) {
	ds, err := s.client.Dataset.Query().Where(dataset.NameEQ(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dataset by name: %w", err)
	}
	return ds, nil
}

// List returns all datasets ordered by id.
func (s *DatasetService) List(ctx context.Context) ([]*ent.Dataset, error) {
	datasets, err := s.client.Dataset.Query().
		Order(ent.Asc(dataset.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return datasets, nil
}

// Patch renames a dataset or updates its readme.
func (s *DatasetService) Patch(ctx context.Context, id int, req PatchDatasetRequest) (*ent.Dataset, error) {
	update := s.client.Dataset.UpdateOneID(id)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "cannot be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Readme != nil {
		update.SetReadme(*req.Readme)
	}

	ds, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to patch dataset: %w", err)
	}
	return ds, nil
}

// Remove deletes a dataset. Removal is rejected while any experiment still
// references it; the error carries the link count.
func (s *DatasetService) Remove(ctx context.Context, id int) error {
	linked, err := s.client.Experiment.Query().
		Where(experiment.DatasetIDEQ(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count linked experiments: %w", err)
	}
	if linked > 0 {
		return &ReferencedError{Count: linked}
	}

	if err := s.client.Dataset.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}

// Frame parses the dataset payload into a row-addressable frame.
func (s *DatasetService) Frame(ds *ent.Dataset) (*tabular.Frame, error) {
	return tabular.FromJSON(ds.Df)
}
