package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/etalab-ia/evalap/ent"
	"github.com/etalab-ia/evalap/pkg/config"
	"github.com/etalab-ia/evalap/pkg/llm"
	"github.com/etalab-ia/evalap/pkg/metrics"
	"github.com/etalab-ia/evalap/pkg/services"
)

// WorkerPool manages a fixed-size pool of task workers pulling from the bus.
type WorkerPool struct {
	runnerID string
	queue    *TaskQueue
	workers  []*Worker
	started  bool
}

// NewWorkerPool creates the pool and its workers. judge may be nil when no
// judge endpoint is configured.
func NewWorkerPool(runnerID string, client *ent.Client, cfg *config.RunnerConfig, queue *TaskQueue, registry *metrics.Registry, llmClient *llm.Client, judge *llm.Endpoint, answers *services.AnswerService, observations *services.ObservationService, lifecycle *LifecycleController) *WorkerPool {
	pool := &WorkerPool{
		runnerID: runnerID,
		queue:    queue,
		workers:  make([]*Worker, 0, cfg.MaxConcurrentTasks),
	}
	for i := 0; i < cfg.MaxConcurrentTasks; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", runnerID, i)
		pool.workers = append(pool.workers,
			NewWorker(workerID, client, cfg, queue, registry, llmClient, judge, answers, observations, lifecycle))
	}
	return pool
}

// Start spawns the worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "runner_id", p.runnerID)
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "runner_id", p.runnerID, "worker_count", len(p.workers))
	for _, worker := range p.workers {
		worker.Start(ctx)
	}
}

// Stop stops all workers; each finishes its current task first.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")
	for _, worker := range p.workers {
		worker.Stop()
	}
	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0,
		RunnerID:      p.runnerID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    p.queue.Depth(),
		WorkerStats:   workerStats,
	}
}
