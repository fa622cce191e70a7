package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunnerConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadRunnerConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestLoadRunnerConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_TASKS", "3")
	t.Setenv("TASK_QUEUE_CAPACITY", "16")
	t.Setenv("LLM_TIMEOUT", "30s")
	t.Setenv("TASK_TIMEOUT", "45s")

	cfg, err := LoadRunnerConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxConcurrentTasks)
	assert.Equal(t, 16, cfg.QueueCapacity)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 45*time.Second, cfg.TaskTimeout)
}

func TestLoadRunnerConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_TASKS", "zero")
	_, err := LoadRunnerConfigFromEnv()
	assert.Error(t, err)
}

func TestRunnerConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero workers", func(c *RunnerConfig) { c.MaxConcurrentTasks = 0 }},
		{"zero capacity", func(c *RunnerConfig) { c.QueueCapacity = 0 }},
		{"zero llm timeout", func(c *RunnerConfig) { c.LLMTimeout = 0 }},
		{"task timeout below llm timeout", func(c *RunnerConfig) { c.TaskTimeout = c.LLMTimeout - time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
