package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/ent/result"
)

// DefaultLeaderboardMetric ranks the leaderboard when no metric is requested.
const DefaultLeaderboardMetric = "judge_notator"

// LeaderboardService builds ranked views over stored observations. Ranking is
// a pure query: nothing is recomputed or written.
type LeaderboardService struct {
	client *ent.Client
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(client *ent.Client) *LeaderboardService {
	return &LeaderboardService{client: client}
}

// Get returns experiments ranked by their best observation score on
// metricName, optionally restricted to one dataset.
func (s *LeaderboardService) Get(ctx context.Context, metricName, datasetName string, limit int) (*Leaderboard, error) {
	if metricName == "" {
		metricName = DefaultLeaderboardMetric
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	results, err := s.client.Result.Query().
		Where(result.MetricNameEQ(metricName)).
		WithObservations().
		WithExperiment(func(q *ent.ExperimentQuery) {
			q.WithDataset().WithModel()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard results: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, res := range results {
		exp := res.Edges.Experiment
		if exp == nil || exp.Edges.Dataset == nil {
			continue
		}
		if datasetName != "" && exp.Edges.Dataset.Name != datasetName {
			continue
		}

		mainScore, ok := maxScore(res.Edges.Observations)
		if !ok {
			continue
		}

		entry := LeaderboardEntry{
			ExperimentID:    exp.ID,
			ExperimentName:  exp.Name,
			DatasetName:     exp.Edges.Dataset.Name,
			MainMetricScore: mainScore,
		}
		if mdl := exp.Edges.Model; mdl != nil {
			entry.ModelName = mdl.Name
			entry.SamplingParams = stringifyParams(mdl.SamplingParams)
			entry.ExtraParams = stringifyParams(mdl.ExtraParams)
		}

		other, err := s.otherMetrics(ctx, exp.ID, metricName)
		if err != nil {
			return nil, err
		}
		entry.OtherMetrics = other

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MainMetricScore > entries[j].MainMetricScore
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &Leaderboard{MetricName: metricName, Entries: entries}, nil
}

// otherMetrics collects the best score per secondary metric of an experiment.
func (s *LeaderboardService) otherMetrics(ctx context.Context, experimentID int, mainMetric string) (map[string]float64, error) {
	results, err := s.client.Result.Query().
		Where(
			result.ExperimentIDEQ(experimentID),
			result.MetricNameNEQ(mainMetric),
		).
		WithObservations().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query secondary metrics: %w", err)
	}

	other := make(map[string]float64, len(results))
	for _, res := range results {
		if score, ok := maxScore(res.Edges.Observations); ok {
			other[res.MetricName] = score
		}
	}
	return other, nil
}

func maxScore(observations []*ent.Observation) (float64, bool) {
	best := 0.0
	found := false
	for _, o := range observations {
		if o.Score == nil {
			continue
		}
		if !found || *o.Score > best {
			best = *o.Score
			found = true
		}
	}
	return best, found
}

func stringifyParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
