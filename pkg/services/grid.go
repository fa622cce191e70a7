package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// BuildParamGrid expands a parameter grid into one flat parameter map per
// point of the Cartesian product. Grid keys may be dotted paths
// ("model.name") that set nested fields. Keys are expanded in sorted order so
// the generated experiments are deterministic.
func BuildParamGrid(common map[string]any, grid map[string][]any) []map[string]any {
	keys := make([]string, 0, len(grid))
	for k := range grid {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := []map[string]any{deepCopyMap(common)}
	for _, key := range keys {
		values := grid[key]
		next := make([]map[string]any, 0, len(points)*len(values))
		for _, point := range points {
			for _, value := range values {
				expanded := deepCopyMap(point)
				setNested(expanded, key, value)
				next = append(next, expanded)
			}
		}
		points = next
	}
	return points
}

// decodeExperimentParams converts one grid point into a create request.
func decodeExperimentParams(params map[string]any) (CreateExperimentRequest, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return CreateExperimentRequest{}, fmt.Errorf("failed to serialize grid point: %w", err)
	}
	var req CreateExperimentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return CreateExperimentRequest{}, NewValidationError("cv", fmt.Sprintf("grid point is not a valid experiment: %v", err))
	}
	return req, nil
}

// setNested writes value at a dotted path, creating intermediate maps.
func setNested(m map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	for _, part := range parts[:len(parts)-1] {
		child, ok := m[part].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[part] = child
		}
		m = child
	}
	m[parts[len(parts)-1]] = value
}

func deepCopyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if child, ok := v.(map[string]any); ok {
			dst[k] = deepCopyMap(child)
			continue
		}
		dst[k] = v
	}
	return dst
}
