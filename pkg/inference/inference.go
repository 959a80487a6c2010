package inference

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// Inferencer is the completion-service boundary. Implementations are
// nondeterministic oracles; callers must treat any error as a signal to
// take their deterministic fallback path.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Verify(ctx context.Context, result string) (bool, error)
}
