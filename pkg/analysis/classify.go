package analysis

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"reelsmith/pkg/schema"
	"reelsmith/pkg/utils"
)

// Classification is the outcome of the single-vs-multi scene decision.
type Classification struct {
	IsMultiScene bool
	SceneCount   int
	Complexity   schema.Complexity
}

// sequenceRX matches the strong sequence keywords that indicate a prompt
// describes distinct ordered moments. The set is deliberately fixed: it
// encodes tuned product behavior, not an open-ended language model.
var sequenceRX = regexp.MustCompile(`(?i)\b(then|next|after that|later|finally|first|second|third|step\s*[123]|part\s*[123])\b`)

var sceneCountRX = regexp.MustCompile(`(?i)(\d+)\s*scenes?`)

const multiSceneLengthThreshold = 250

// multiSceneGate is the conservative AND-gate for fragmenting a prompt.
// All three conditions must hold; short-form content defaults to one scene.
func multiSceneGate(prompt string) bool {
	lower := strings.ToLower(prompt)
	if len(sequenceRX.FindAllString(prompt, -1)) < 2 {
		return false
	}
	if utf8.RuneCountInString(prompt) <= multiSceneLengthThreshold {
		return false
	}
	if !strings.Contains(lower, "then ") {
		return false
	}
	return utils.StringContains(lower, true, "after", "later", "finally")
}

// sequenceCount returns how many sequence indicators occur in the prompt.
func sequenceCount(prompt string) int {
	return len(sequenceRX.FindAllString(prompt, -1))
}

// clampSceneCount bounds a multi-scene count to the 2..MaxScenes window.
func clampSceneCount(n int) int {
	if n < 2 {
		return 2
	}
	if n > schema.MaxScenes {
		return schema.MaxScenes
	}
	return n
}

// Classify decides single-scene vs multi-scene for a sanitized prompt.
// The completion service is consulted once; any failure falls back to the
// pure heuristic so classification never errors.
func (a *Analyzer) Classify(ctx context.Context, prompt string) Classification {
	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(200),
		Temperature:         openai.Float(0.3),
	}
	out, err := a.infer(ctx, params, classifyPrompt, prompt)
	if err != nil {
		log.Warn("classification inference failed, using heuristic", "error", err)
		return classifyHeuristic(prompt)
	}
	return parseClassification(out, prompt)
}

// parseClassification reads the free-text recommendation. The multi-scene
// gate still applies: a model recommendation alone never fragments a prompt.
func parseClassification(out, prompt string) Classification {
	recommendsMulti := utils.StringContains(out, false, "multi-scene", "multi scene", "multiple scenes")
	if !recommendsMulti || !multiSceneGate(prompt) {
		return Classification{IsMultiScene: false, SceneCount: 1, Complexity: schema.ComplexitySimple}
	}

	count := 0
	if m := sceneCountRX.FindStringSubmatch(out); m != nil {
		count, _ = strconv.Atoi(m[1])
	}
	if count < 2 || count > schema.MaxScenes {
		count = sequenceCount(prompt)
	}
	count = clampSceneCount(count)

	return Classification{
		IsMultiScene: true,
		SceneCount:   count,
		Complexity:   complexityFor(true, count),
	}
}

// classifyHeuristic is the deterministic fallback path: the same AND-gate
// plus a split-count check over the sequence keywords.
func classifyHeuristic(prompt string) Classification {
	segments := sequenceRX.Split(prompt, -1)
	if !multiSceneGate(prompt) || len(segments) <= 3 {
		return Classification{IsMultiScene: false, SceneCount: 1, Complexity: schema.ComplexitySimple}
	}
	count := clampSceneCount(sequenceCount(prompt))
	return Classification{
		IsMultiScene: true,
		SceneCount:   count,
		Complexity:   complexityFor(true, count),
	}
}

func complexityFor(multi bool, count int) schema.Complexity {
	switch {
	case multi && count > 2:
		return schema.ComplexityComplex
	case multi:
		return schema.ComplexityModerate
	default:
		return schema.ComplexitySimple
	}
}
