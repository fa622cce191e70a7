// Package config holds runner configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// RunnerConfig controls the task queue and worker pool.
type RunnerConfig struct {
	// MaxConcurrentTasks is the number of worker goroutines pulling tasks.
	MaxConcurrentTasks int

	// QueueCapacity bounds the producer sink and worker source buffers.
	// Producers block once the sink is full.
	QueueCapacity int

	// LLMTimeout is the wall-clock limit for one completion call.
	LLMTimeout time.Duration

	// TaskTimeout bounds one task end to end (row load, external call, upsert).
	TaskTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for the HTTP server
	// to shut down.
	GracefulShutdownTimeout time.Duration
}

// DefaultRunnerConfig returns the built-in runner defaults.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		MaxConcurrentTasks:      8,
		QueueCapacity:           1024,
		LLMTimeout:              120 * time.Second,
		TaskTimeout:             150 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}

// LoadRunnerConfigFromEnv loads runner configuration from environment
// variables, falling back to defaults.
func LoadRunnerConfigFromEnv() (*RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	if v := os.Getenv("MAX_CONCURRENT_TASKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_CONCURRENT_TASKS: %w", err)
		}
		cfg.MaxConcurrentTasks = n
	}
	if v := os.Getenv("TASK_QUEUE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TASK_QUEUE_CAPACITY: %w", err)
		}
		cfg.QueueCapacity = n
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
		}
		cfg.LLMTimeout = d
	}
	if v := os.Getenv("TASK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TASK_TIMEOUT: %w", err)
		}
		cfg.TaskTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *RunnerConfig) Validate() error {
	if c.MaxConcurrentTasks < 1 {
		return fmt.Errorf("MAX_CONCURRENT_TASKS must be at least 1")
	}
	if c.QueueCapacity < 1 {
		return fmt.Errorf("TASK_QUEUE_CAPACITY must be at least 1")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.TaskTimeout < c.LLMTimeout {
		return fmt.Errorf("TASK_TIMEOUT (%v) cannot be below LLM_TIMEOUT (%v)", c.TaskTimeout, c.LLMTimeout)
	}
	return nil
}
