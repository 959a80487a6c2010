package analysis

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"reelsmith/pkg/schema"
	"reelsmith/pkg/utils"
)

// Appended to the original prompt when the enhancement call fails.
const enhanceFallbackSuffix = ", cinematic lighting, vertical 9:16 framing, smooth camera motion, high detail"

// Enhancement layers a rewritten generation prompt on top of a full scene
// analysis, with a word-level delta against the original.
type Enhancement struct {
	EnhancedPrompt string
	Changes        []schema.WordChange
	Analysis       *schema.SceneAnalysisResult
}

// Enhance runs the normal analysis, then one generative completion that
// rewrites the prompt for a text-to-video model. Character descriptions
// are handed to the rewrite so consistent wording survives into the
// enhanced prompt. Like Analyze, it only errors on invalid input.
func (a *Analyzer) Enhance(ctx context.Context, raw string) (*Enhancement, error) {
	prompt, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	result, err := a.Analyze(ctx, prompt)
	if err != nil {
		return nil, err
	}

	user := prompt
	if result.RequiresCharacterConsistency {
		var sb strings.Builder
		sb.WriteString(prompt)
		sb.WriteString("\n\nReuse these character descriptions verbatim:")
		for _, ch := range result.CharacterDescriptions {
			sb.WriteString("\n- ")
			sb.WriteString(ch.DetailedDescription)
		}
		user = sb.String()
	}

	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(enhanceTokenBudget(user)),
		Temperature:         openai.Float(0.7),
	}
	enhanced, err := a.infer(ctx, params, enhancePrompt, user)
	if err != nil {
		log.Warn("enhancement inference failed, using suffix fallback", "error", err)
		enhanced = prompt + enhanceFallbackSuffix
	}
	enhanced = strings.Trim(strings.TrimSpace(enhanced), `"`)
	if enhanced == "" {
		enhanced = prompt + enhanceFallbackSuffix
	}

	changes := make([]schema.WordChange, 0)
	for _, d := range utils.DiffWords(prompt, enhanced) {
		changes = append(changes, schema.WordChange{Op: d.Op, Text: d.Text})
	}

	return &Enhancement{
		EnhancedPrompt: enhanced,
		Changes:        changes,
		Analysis:       result,
	}, nil
}

// enhanceTokenBudget sizes the completion from a token estimate of the
// input, bounded to the 200..600 window used across generative call sites.
func enhanceTokenBudget(user string) int64 {
	est, err := utils.NumTokensFromMessages(enhancePrompt + user)
	if err != nil {
		return 600
	}
	budget := int64(est) * 2
	if budget < 200 {
		return 200
	}
	if budget > 600 {
		return 600
	}
	return budget
}
