package services

// CreateDatasetRequest carries a new dataset: a unique name and the
// serialized tabular payload.
type CreateDatasetRequest struct {
	Name   string `json:"name"`
	Readme string `json:"readme,omitempty"`
	Df     string `json:"df"`
}

// PatchDatasetRequest renames a dataset or updates its readme. The payload
// itself is immutable.
type PatchDatasetRequest struct {
	Name   *string `json:"name,omitempty"`
	Readme *string `json:"readme,omitempty"`
}

// ModelSpec describes the completion endpoint an experiment generates with.
type ModelSpec struct {
	Name           string         `json:"name"`
	BaseURL        string         `json:"base_url"`
	APIKey         string         `json:"api_key"`
	PromptSystem   string         `json:"prompt_system,omitempty"`
	SamplingParams map[string]any `json:"sampling_params,omitempty"`
	ExtraParams    map[string]any `json:"extra_params,omitempty"`
}

// CreateExperimentRequest creates one experiment. Dataset is referenced by
// name; Model, when present, is created as a dedicated row (two experiments
// with the same model name but different parameters are distinct rows).
type CreateExperimentRequest struct {
	Name            string     `json:"name"`
	Readme          string     `json:"readme,omitempty"`
	ExperimentSetID *int       `json:"experiment_set_id,omitempty"`
	Metrics         []string   `json:"metrics"`
	Dataset         string     `json:"dataset"`
	Model           *ModelSpec `json:"model,omitempty"`
}

// PatchExperimentRequest adds metrics to an experiment and/or requests a
// rerun of either phase.
type PatchExperimentRequest struct {
	Readme       *string  `json:"readme,omitempty"`
	Metrics      []string `json:"metrics,omitempty"`
	RerunAnswers bool     `json:"rerun_answers,omitempty"`
	RerunMetrics bool     `json:"rerun_metrics,omitempty"`
}

// ExperimentFilters narrows experiment listings.
type ExperimentFilters struct {
	SetID  *int
	Orphan bool
	Limit  int
}

// GridCV describes a parameter grid: the set contains one experiment per
// point of the Cartesian product of GridParams, duplicated Repeat times.
type GridCV struct {
	CommonParams map[string]any   `json:"common_params"`
	GridParams   map[string][]any `json:"grid_params"`
	Repeat       int              `json:"repeat"`
}

// CreateExperimentSetRequest creates a set from an explicit experiment list
// or from a grid, not both.
type CreateExperimentSetRequest struct {
	Name        string                    `json:"name"`
	Readme      string                    `json:"readme,omitempty"`
	Experiments []CreateExperimentRequest `json:"experiments,omitempty"`
	CV          *GridCV                   `json:"cv,omitempty"`
}

// PatchExperimentSetRequest appends experiments to an existing set.
type PatchExperimentSetRequest struct {
	Readme      *string                   `json:"readme,omitempty"`
	Experiments []CreateExperimentRequest `json:"experiments,omitempty"`
	CV          *GridCV                   `json:"cv,omitempty"`
}

// AnswerFields is the upsert payload for one (experiment, row) slot. Nil
// pointers clear the column, so a retried row fully overwrites its prior
// outcome.
type AnswerFields struct {
	Answer        *string
	ErrorMsg      *string
	ExecutionTime *int
	Metadata      map[string]any
}

// ObservationFields is the upsert payload for one (result, row) slot.
type ObservationFields struct {
	Score         *float64
	Observation   *string
	ErrorMsg      *string
	ExecutionTime *int
}

// LeaderboardEntry is one ranked row of the leaderboard view.
type LeaderboardEntry struct {
	ExperimentID    int                `json:"experiment_id"`
	ExperimentName  string             `json:"experiment_name"`
	ModelName       string             `json:"model_name,omitempty"`
	DatasetName     string             `json:"dataset_name"`
	MainMetricScore float64            `json:"main_metric_score"`
	OtherMetrics    map[string]float64 `json:"other_metrics"`
	SamplingParams  map[string]string  `json:"sampling_params,omitempty"`
	ExtraParams     map[string]string  `json:"extra_params,omitempty"`
}

// Leaderboard is the ranked view over stored observations.
type Leaderboard struct {
	MetricName string             `json:"metric_name"`
	Entries    []LeaderboardEntry `json:"entries"`
}

// RetryPlan lists what the retry planner re-enqueues.
type RetryPlan struct {
	ExperimentIDs []int `json:"experiment_ids"`
	ResultIDs     []int `json:"result_ids"`
}
