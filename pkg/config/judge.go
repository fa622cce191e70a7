package config

import "os"

// JudgeConfig describes the dedicated completion endpoint that llm-kind
// metrics grade with. It is deliberately independent of the candidate Model
// under evaluation: a model grading its own output is not a judge.
type JudgeConfig struct {
	// Model is the judge model name, e.g. "gpt-4o".
	Model string

	// BaseURL is the OpenAI-compatible endpoint serving the judge model.
	BaseURL string

	// APIKey is the credential for the judge endpoint.
	APIKey string
}

// Enabled reports whether a usable judge endpoint is configured.
// Experiments requesting llm-kind metrics are rejected at creation when it
// is not.
func (c *JudgeConfig) Enabled() bool {
	return c != nil && c.Model != "" && c.BaseURL != ""
}

// LoadJudgeConfigFromEnv loads the judge endpoint from environment
// variables. All fields empty simply means no judge is available.
func LoadJudgeConfigFromEnv() *JudgeConfig {
	return &JudgeConfig{
		Model:   os.Getenv("JUDGE_MODEL"),
		BaseURL: os.Getenv("JUDGE_BASE_URL"),
		APIKey:  os.Getenv("JUDGE_API_KEY"),
	}
}
