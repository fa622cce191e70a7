package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJudgeConfig_Enabled(t *testing.T) {
	assert.False(t, (*JudgeConfig)(nil).Enabled())
	assert.False(t, (&JudgeConfig{}).Enabled())
	assert.False(t, (&JudgeConfig{Model: "m"}).Enabled())
	assert.False(t, (&JudgeConfig{BaseURL: "http://judge"}).Enabled())
	assert.True(t, (&JudgeConfig{Model: "m", BaseURL: "http://judge"}).Enabled())
}

func TestLoadJudgeConfigFromEnv(t *testing.T) {
	t.Setenv("JUDGE_MODEL", "gpt-judge")
	t.Setenv("JUDGE_BASE_URL", "http://judge.local")
	t.Setenv("JUDGE_API_KEY", "secret")

	cfg := LoadJudgeConfigFromEnv()
	assert.Equal(t, "gpt-judge", cfg.Model)
	assert.Equal(t, "http://judge.local", cfg.BaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.True(t, cfg.Enabled())
}
