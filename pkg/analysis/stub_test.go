package analysis

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
)

var errServiceDown = errors.New("completion service unavailable")

// stubInferencer routes Infer through a test-provided function.
type stubInferencer struct {
	fn func(system, user string) (string, error)
}

func (s *stubInferencer) Infer(_ context.Context, _ *openai.ChatCompletionNewParams, system, user string) (string, error) {
	return s.fn(system, user)
}

func (s *stubInferencer) Verify(_ context.Context, result string) (bool, error) {
	return result != "", nil
}

// failingAnalyzer exercises every fallback path at once.
func failingAnalyzer() *Analyzer {
	return NewAnalyzer(&stubInferencer{fn: func(string, string) (string, error) {
		return "", errServiceDown
	}})
}
