package metrics

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RegisterBuiltins installs the built-in metrics into the registry.
// Called once from process wiring, before Freeze.
func RegisterBuiltins(r *Registry) {
	r.Register(Metric{
		Name:        "nb_tokens_prompt",
		Description: "Number of tokens in the prompt",
		Kind:        KindOps,
		Require:     []Requirement{RequireQuery},
		Compute:     metadataNumber("nb_tokens_prompt"),
	})
	r.Register(Metric{
		Name:        "nb_tokens_completion",
		Description: "Number of tokens in the completion",
		Kind:        KindOps,
		Require:     []Requirement{RequireOutput},
		Compute:     metadataNumber("nb_tokens_completion"),
	})
	r.Register(Metric{
		Name:        "nb_tool_calls",
		Description: "Number of tools that has been called for the generation",
		Kind:        KindOps,
		Require:     []Requirement{RequireOutput},
		Compute:     metadataNumber("nb_tool_calls"),
	})
	r.Register(Metric{
		Name:        "generation_time",
		Description: "The time to generate the answer/output",
		Kind:        KindOps,
		Require:     []Requirement{RequireOutput},
		Compute:     metadataNumber("generation_time"),
	})
	r.Register(Metric{
		Name:        "output_length",
		Description: "Number of words in the output",
		Kind:        KindDeterministic,
		Require:     []Requirement{RequireOutput},
		Compute: func(_ context.Context, in Input, _ Judge) (*float64, string, error) {
			n := float64(len(strings.Fields(in.Output)))
			return &n, "", nil
		},
	})
	r.Register(Metric{
		Name:        "judge_exactness",
		Description: "Binary score: does the output match the ground truth exactly",
		Kind:        KindDeterministic,
		Require:     []Requirement{RequireOutput, RequireOutputTrue},
		Compute: func(_ context.Context, in Input, _ Judge) (*float64, string, error) {
			score := 0.0
			if normalize(in.Output) == normalize(in.OutputTrue) {
				score = 1.0
			}
			return &score, "", nil
		},
	})
	r.Register(Metric{
		Name:        "judge_notator",
		Description: "LLM-judged answer quality on a 0-10 scale",
		Kind:        KindLLM,
		Require:     []Requirement{RequireQuery, RequireOutput},
		Compute:     judgeNotator,
	})
}

// metadataNumber reads a numeric field from the answer metadata bag.
// A missing or null field yields a null score, not a failure: rows whose
// output came from the dataset carry no generation metadata at all.
func metadataNumber(key string) ComputeFunc {
	return func(_ context.Context, in Input, _ Judge) (*float64, string, error) {
		value, ok := in.Metadata[key]
		if !ok || value == nil {
			return nil, "", nil
		}
		switch v := value.(type) {
		case float64:
			return &v, "", nil
		case int:
			f := float64(v)
			return &f, "", nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, "", fmt.Errorf("metadata field %q is not numeric: %w", key, err)
			}
			return &f, "", nil
		default:
			return nil, "", fmt.Errorf("metadata field %q has unsupported type %T", key, value)
		}
	}
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

const notatorPrompt = `You are a strict grader. Given a question and a candidate answer,
rate the answer quality on a scale from 0 to 10.
Reply with the numeric grade first, optionally followed by a short justification.`

var leadingNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

func judgeNotator(ctx context.Context, in Input, judge Judge) (*float64, string, error) {
	if judge == nil {
		return nil, "", fmt.Errorf("no judge endpoint available for llm metric")
	}

	user := fmt.Sprintf("Question:\n%s\n\nAnswer:\n%s", in.Query, in.Output)
	reply, err := judge.Complete(ctx, notatorPrompt, user)
	if err != nil {
		return nil, "", fmt.Errorf("judge call failed: %w", err)
	}

	match := leadingNumber.FindString(reply)
	if match == "" {
		return nil, reply, fmt.Errorf("no grade found in judge reply")
	}
	score, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil, reply, fmt.Errorf("unparsable grade %q: %w", match, err)
	}
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return &score, reply, nil
}
