package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, handler func(req map[string]any) (int, map[string]any)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		status, resp := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func okResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   "mock",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     11,
			"completion_tokens": 4,
			"total_tokens":      15,
		},
	}
}

func TestClient_Generate(t *testing.T) {
	var captured map[string]any
	srv := completionServer(t, func(req map[string]any) (int, map[string]any) {
		captured = req
		return http.StatusOK, okResponse("the answer")
	})

	client := NewClient(5 * time.Second)
	completion, err := client.Generate(context.Background(), Endpoint{
		Name:         "my-model",
		BaseURL:      srv.URL,
		APIKey:       "secret",
		PromptSystem: "be brief",
		SamplingParams: map[string]any{
			"temperature": 0.2,
			"max_tokens":  64.0,
			"ignored_key": "whatever",
		},
	}, "what is the question")
	require.NoError(t, err)

	assert.Equal(t, "the answer", completion.Text)
	assert.EqualValues(t, 11, completion.Metadata["nb_tokens_prompt"])
	assert.EqualValues(t, 4, completion.Metadata["nb_tokens_completion"])
	assert.EqualValues(t, 0, completion.Metadata["nb_tool_calls"])
	assert.Contains(t, completion.Metadata, "generation_time")

	// The wire request carries the model name, both messages, and the known
	// sampling params; unknown bag keys are dropped.
	assert.Equal(t, "my-model", captured["model"])
	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "be brief", system["content"])
	assert.InDelta(t, 0.2, captured["temperature"].(float64), 1e-6)
	assert.EqualValues(t, 64, captured["max_tokens"])
	assert.NotContains(t, captured, "ignored_key")
}

func TestClient_GenerateWithoutSystemPrompt(t *testing.T) {
	srv := completionServer(t, func(req map[string]any) (int, map[string]any) {
		messages := req["messages"].([]any)
		require.Len(t, messages, 1)
		return http.StatusOK, okResponse("ok")
	})

	client := NewClient(5 * time.Second)
	_, err := client.Generate(context.Background(), Endpoint{
		Name: "m", BaseURL: srv.URL, APIKey: "k",
	}, "hello")
	require.NoError(t, err)
}

func TestClient_GenerateUpstreamError(t *testing.T) {
	srv := completionServer(t, func(req map[string]any) (int, map[string]any) {
		return http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"message": "exploded", "type": "server_error"},
		}
	})

	client := NewClient(5 * time.Second)
	_, err := client.Generate(context.Background(), Endpoint{
		Name: "m", BaseURL: srv.URL, APIKey: "k",
	}, "hello")
	assert.Error(t, err)
}

func TestClient_GenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(50 * time.Millisecond)
	start := time.Now()
	_, err := client.Generate(context.Background(), Endpoint{
		Name: "m", BaseURL: srv.URL, APIKey: "k",
	}, "hello")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestJudgeAdapter_OverridesSystemPrompt(t *testing.T) {
	srv := completionServer(t, func(req map[string]any) (int, map[string]any) {
		messages := req["messages"].([]any)
		system := messages[0].(map[string]any)
		require.Equal(t, "grade this", system["content"])
		return http.StatusOK, okResponse("7")
	})

	adapter := &JudgeAdapter{
		Client: NewClient(5 * time.Second),
		Endpoint: Endpoint{
			Name: "judge", BaseURL: srv.URL, APIKey: "k",
			PromptSystem: "original prompt",
		},
	}
	reply, err := adapter.Complete(context.Background(), "grade this", "question + answer")
	require.NoError(t, err)
	assert.Equal(t, "7", reply)
}

func TestApplySamplingParams_Stop(t *testing.T) {
	req := &openai.ChatCompletionRequest{}
	applySamplingParams(req, map[string]any{
		"stop": []any{"END", "STOP"},
		"seed": 7.0,
	})
	assert.Equal(t, []string{"END", "STOP"}, req.Stop)
	require.NotNil(t, req.Seed)
	assert.Equal(t, 7, *req.Seed)
}
