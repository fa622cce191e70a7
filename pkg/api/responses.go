package api

import (
	"time"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/pkg/database"
	"github.com/etalab-ia/evalap/pkg/queue"
)

// DatasetResponse is the dataset shape returned by the API. The payload is
// included only when explicitly requested.
type DatasetResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Readme        string    `json:"readme,omitempty"`
	HasQuery      bool      `json:"has_query"`
	HasOutput     bool      `json:"has_output"`
	HasOutputTrue bool      `json:"has_output_true"`
	Size          int       `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
	Df            string    `json:"df,omitempty"`
}

// ModelResponse is the model shape returned by the API. The credential never
// leaves the store.
type ModelResponse struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	BaseURL        string         `json:"base_url"`
	PromptSystem   string         `json:"prompt_system,omitempty"`
	SamplingParams map[string]any `json:"sampling_params,omitempty"`
	ExtraParams    map[string]any `json:"extra_params,omitempty"`
}

// AnswerResponse is one generated answer row.
type AnswerResponse struct {
	ID            int            `json:"id"`
	NumLine       int            `json:"num_line"`
	Answer        *string        `json:"answer"`
	ErrorMsg      *string        `json:"error_msg"`
	ExecutionTime *int           `json:"execution_time"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// ObservationResponse is one metric score row.
type ObservationResponse struct {
	ID            int       `json:"id"`
	NumLine       int       `json:"num_line"`
	Score         *float64  `json:"score"`
	Observation   *string   `json:"observation"`
	ErrorMsg      *string   `json:"error_msg"`
	ExecutionTime *int      `json:"execution_time"`
	CreatedAt     time.Time `json:"created_at"`
}

// ResultResponse is one (experiment, metric) accumulation row.
type ResultResponse struct {
	ID           int                   `json:"id"`
	MetricName   string                `json:"metric_name"`
	MetricStatus string                `json:"metric_status"`
	NumTry       int                   `json:"num_try"`
	NumSuccess   int                   `json:"num_success"`
	ExperimentID int                   `json:"experiment_id"`
	CreatedAt    time.Time             `json:"created_at"`
	Observations []ObservationResponse `json:"observation_table,omitempty"`
}

// ExperimentResponse is the experiment shape returned by the API, with
// optional denormalized edges.
type ExperimentResponse struct {
	ID                    int              `json:"id"`
	Name                  string           `json:"name"`
	Readme                string           `json:"readme,omitempty"`
	ExperimentStatus      string           `json:"experiment_status"`
	NumTry                int              `json:"num_try"`
	NumSuccess            int              `json:"num_success"`
	NumObservationTry     int              `json:"num_observation_try"`
	NumObservationSuccess int              `json:"num_observation_success"`
	NumMetrics            int              `json:"num_metrics"`
	DatasetID             int              `json:"dataset_id"`
	ExperimentSetID       *int             `json:"experiment_set_id,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	Model                 *ModelResponse   `json:"model,omitempty"`
	Dataset               *DatasetResponse `json:"dataset,omitempty"`
	Results               []ResultResponse `json:"results,omitempty"`
	Answers               []AnswerResponse `json:"answers,omitempty"`
}

// ExperimentSetResponse is the set shape returned by the API.
type ExperimentSetResponse struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Readme      string               `json:"readme,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	Experiments []ExperimentResponse `json:"experiments"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Runner   *queue.PoolHealth      `json:"runner,omitempty"`
}

func toDatasetResponse(ds *ent.Dataset, withDf bool) DatasetResponse {
	resp := DatasetResponse{
		ID:            ds.ID,
		Name:          ds.Name,
		HasQuery:      ds.HasQuery,
		HasOutput:     ds.HasOutput,
		HasOutputTrue: ds.HasOutputTrue,
		Size:          ds.Size,
		CreatedAt:     ds.CreatedAt,
	}
	if ds.Readme != nil {
		resp.Readme = *ds.Readme
	}
	if withDf {
		resp.Df = ds.Df
	}
	return resp
}

func toModelResponse(mdl *ent.Model) *ModelResponse {
	resp := &ModelResponse{
		ID:             mdl.ID,
		Name:           mdl.Name,
		BaseURL:        mdl.BaseURL,
		SamplingParams: mdl.SamplingParams,
		ExtraParams:    mdl.ExtraParams,
	}
	if mdl.PromptSystem != nil {
		resp.PromptSystem = *mdl.PromptSystem
	}
	return resp
}

func toAnswerResponse(a *ent.Answer) AnswerResponse {
	return AnswerResponse{
		ID:            a.ID,
		NumLine:       a.NumLine,
		Answer:        a.Answer,
		ErrorMsg:      a.ErrorMsg,
		ExecutionTime: a.ExecutionTime,
		Metadata:      a.Metadata,
		CreatedAt:     a.CreatedAt,
	}
}

func toObservationResponse(o *ent.Observation) ObservationResponse {
	return ObservationResponse{
		ID:            o.ID,
		NumLine:       o.NumLine,
		Score:         o.Score,
		Observation:   o.Observation,
		ErrorMsg:      o.ErrorMsg,
		ExecutionTime: o.ExecutionTime,
		CreatedAt:     o.CreatedAt,
	}
}

func toResultResponse(res *ent.Result) ResultResponse {
	resp := ResultResponse{
		ID:           res.ID,
		MetricName:   res.MetricName,
		MetricStatus: string(res.MetricStatus),
		NumTry:       res.NumTry,
		NumSuccess:   res.NumSuccess,
		ExperimentID: res.ExperimentID,
		CreatedAt:    res.CreatedAt,
	}
	for _, o := range res.Edges.Observations {
		resp.Observations = append(resp.Observations, toObservationResponse(o))
	}
	return resp
}

func toExperimentResponse(exp *ent.Experiment) ExperimentResponse {
	resp := ExperimentResponse{
		ID:                    exp.ID,
		Name:                  exp.Name,
		ExperimentStatus:      string(exp.ExperimentStatus),
		NumTry:                exp.NumTry,
		NumSuccess:            exp.NumSuccess,
		NumObservationTry:     exp.NumObservationTry,
		NumObservationSuccess: exp.NumObservationSuccess,
		NumMetrics:            exp.NumMetrics,
		DatasetID:             exp.DatasetID,
		ExperimentSetID:       exp.ExperimentSetID,
		CreatedAt:             exp.CreatedAt,
	}
	if exp.Readme != nil {
		resp.Readme = *exp.Readme
	}
	if exp.Edges.Model != nil {
		resp.Model = toModelResponse(exp.Edges.Model)
	}
	if exp.Edges.Dataset != nil {
		ds := toDatasetResponse(exp.Edges.Dataset, true)
		resp.Dataset = &ds
	}
	for _, res := range exp.Edges.Results {
		resp.Results = append(resp.Results, toResultResponse(res))
	}
	for _, a := range exp.Edges.Answers {
		resp.Answers = append(resp.Answers, toAnswerResponse(a))
	}
	return resp
}

func toExperimentSetResponse(set *ent.ExperimentSet) ExperimentSetResponse {
	resp := ExperimentSetResponse{
		ID:          set.ID,
		Name:        set.Name,
		CreatedAt:   set.CreatedAt,
		Experiments: []ExperimentResponse{},
	}
	if set.Readme != nil {
		resp.Readme = *set.Readme
	}
	for _, exp := range set.Edges.Experiments {
		resp.Experiments = append(resp.Experiments, toExperimentResponse(exp))
	}
	return resp
}
