package inference

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GrokInferencer routes the same chat-completion surface through x.ai.
type GrokInferencer struct {
	openai *OpenAIInferencer
}

func NewGrokInferencer(apiKey string, model string) *GrokInferencer {
	if model == "" {
		model = "grok-4-fast-reasoning"
	}
	client := openai.NewClient(
		option.WithBaseURL("https://api.x.ai/v1"),
		option.WithAPIKey(apiKey),
	)
	return &GrokInferencer{
		openai: &OpenAIInferencer{
			client: &client,
			apiKey: apiKey,
			model:  model,
		},
	}
}

func (o *GrokInferencer) SetModel(model string) {
	o.openai.SetModel(model)
}

func (o *GrokInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	return o.openai.Infer(ctx, params, system, user)
}

func (o *GrokInferencer) Verify(ctx context.Context, result string) (bool, error) {
	if result == "" {
		return false, errors.New("empty result")
	}
	return true, nil
}
