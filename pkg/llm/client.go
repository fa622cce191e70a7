// Package llm wraps the outbound completion calls made by answer tasks and
// llm-kind metrics. Every Model row points at an OpenAI-compatible endpoint
// (base URL + credential), so a single client implementation serves them all.
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Endpoint describes one completion endpoint, taken from a Model row.
type Endpoint struct {
	Name           string
	BaseURL        string
	APIKey         string
	PromptSystem   string
	SamplingParams map[string]any
}

// Completion is the outcome of one completion call.
type Completion struct {
	Text string
	// Metadata carries the per-row observability bag stored alongside the
	// answer: token counts, tool-call count, generation time (ms).
	Metadata map[string]any
}

// Client performs one-shot chat completions with a per-request timeout.
type Client struct {
	timeout time.Duration
}

// NewClient creates a completion client. timeout bounds the wall-clock time
// of every individual call.
func NewClient(timeout time.Duration) *Client {
	return &Client{timeout: timeout}
}

// Generate runs a single chat completion against the endpoint.
// Errors (transport, HTTP, timeout) are returned as-is; the caller decides
// how to account for them.
func (c *Client) Generate(ctx context.Context, ep Endpoint, query string) (*Completion, error) {
	cfg := openai.DefaultConfig(ep.APIKey)
	if ep.BaseURL != "" {
		cfg.BaseURL = ep.BaseURL
	}
	api := openai.NewClientWithConfig(cfg)

	var messages []openai.ChatCompletionMessage
	if ep.PromptSystem != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: ep.PromptSystem,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: query,
	})

	req := openai.ChatCompletionRequest{
		Model:    ep.Name,
		Messages: messages,
	}
	applySamplingParams(&req, ep.SamplingParams)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := api.CreateChatCompletion(callCtx, req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("completion call to %q failed: %w", ep.Name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion call to %q returned no choices", ep.Name)
	}

	choice := resp.Choices[0]
	return &Completion{
		Text: choice.Message.Content,
		Metadata: map[string]any{
			"nb_tokens_prompt":     resp.Usage.PromptTokens,
			"nb_tokens_completion": resp.Usage.CompletionTokens,
			"nb_tool_calls":        len(choice.Message.ToolCalls),
			"generation_time":      elapsed.Milliseconds(),
		},
	}, nil
}

// JudgeAdapter satisfies the judge surface used by llm-kind metrics: a bare
// system+user exchange returning the reply text.
type JudgeAdapter struct {
	Client   *Client
	Endpoint Endpoint
}

// Complete runs a judge exchange through the adapter's endpoint.
func (j *JudgeAdapter) Complete(ctx context.Context, system, user string) (string, error) {
	ep := j.Endpoint
	ep.PromptSystem = system
	completion, err := j.Client.Generate(ctx, ep, user)
	if err != nil {
		return "", err
	}
	return completion.Text, nil
}

// applySamplingParams maps the free-form sampling bag onto the request.
// Unknown keys are ignored: the bag is opaque to the engine and only the
// keys the wire protocol knows are forwarded.
func applySamplingParams(req *openai.ChatCompletionRequest, params map[string]any) {
	for key, value := range params {
		switch key {
		case "temperature":
			if f, ok := asFloat(value); ok {
				req.Temperature = float32(f)
			}
		case "top_p":
			if f, ok := asFloat(value); ok {
				req.TopP = float32(f)
			}
		case "max_tokens":
			if f, ok := asFloat(value); ok {
				req.MaxTokens = int(f)
			}
		case "frequency_penalty":
			if f, ok := asFloat(value); ok {
				req.FrequencyPenalty = float32(f)
			}
		case "presence_penalty":
			if f, ok := asFloat(value); ok {
				req.PresencePenalty = float32(f)
			}
		case "seed":
			if f, ok := asFloat(value); ok {
				seed := int(f)
				req.Seed = &seed
			}
		case "stop":
			switch v := value.(type) {
			case string:
				req.Stop = []string{v}
			case []any:
				for _, s := range v {
					if str, ok := s.(string); ok {
						req.Stop = append(req.Stop, str)
					}
				}
			}
		}
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
