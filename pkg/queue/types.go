// Package queue provides the task bus, dispatcher, worker pool and retry
// planner that drive experiment execution.
package queue

import (
	"errors"
	"time"
)

// TaskKind discriminates the two task flavors on the bus.
type TaskKind string

// Task kinds.
const (
	TaskAnswer      TaskKind = "answer"
	TaskObservation TaskKind = "observation"
)

// Envelope is one JSON message on the task bus. ResultID and MetricName are
// set for observation tasks only.
type Envelope struct {
	Kind         TaskKind `json:"kind"`
	ExperimentID int      `json:"experiment_id"`
	NumLine      int      `json:"num_line"`
	ResultID     int      `json:"result_id,omitempty"`
	MetricName   string   `json:"metric_name,omitempty"`
}

// Sentinel errors for queue operations.
var (
	// ErrQueueClosed indicates the bus has been shut down.
	ErrQueueClosed = errors.New("task queue closed")
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	RunnerID      string         `json:"runner_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}
