package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"reelsmith/pkg/schema"
	"reelsmith/pkg/utils"
)

// Generic attribute defaults used when the model output never mentions an
// attribute, and for the full synthesized description on service failure.
const (
	defaultAge         = "in their 20s"
	defaultHair        = "shoulder-length brown hair"
	defaultClothing    = "casual clothing"
	defaultFacial      = "friendly expression"
	defaultAccessories = "minimal jewelry"
)

// DescribeCharacters produces one structured visual description per input
// name, in input order, with ids char_1..char_k. One completion call is
// issued per character, sequentially; a failed call synthesizes a generic
// description for that character instead.
func (a *Analyzer) DescribeCharacters(ctx context.Context, prompt string, names []string) []schema.CharacterDescription {
	if len(names) > schema.MaxCharacters {
		names = names[:schema.MaxCharacters]
	}
	descriptions := make([]schema.CharacterDescription, 0, len(names))
	for i, name := range names {
		id := fmt.Sprintf("char_%d", i+1)

		params := &openai.ChatCompletionNewParams{
			MaxCompletionTokens: openai.Int(400),
			Temperature:         openai.Float(0.6),
		}
		user := fmt.Sprintf("Video idea: %s\n\nDescribe this character: %s", prompt, name)
		out, err := a.infer(ctx, params, describePrompt, user)
		if err != nil {
			log.Warn("character description inference failed, synthesizing", "character", name, "error", err)
			descriptions = append(descriptions, genericDescription(id, name))
			continue
		}
		descriptions = append(descriptions, parseDescription(id, name, out))
	}
	return descriptions
}

// parseDescription extracts each attribute by sentence-level keyword
// search over the free-text response, defaulting per attribute when no
// sentence matches.
func parseDescription(id, name, out string) schema.CharacterDescription {
	out = strings.TrimSpace(out)
	identifiers := utils.SentencesContaining(out, 3, "distinctive", "unique", "specific", "particular")
	if identifiers == nil {
		identifiers = []string{}
	}
	return schema.CharacterDescription{
		CharacterID:         id,
		Name:                name,
		DetailedDescription: out,
		Age:                 firstSentenceWith(out, defaultAge, "age", "old"),
		Hair:                firstSentenceWith(out, defaultHair, "hair"),
		Clothing:            firstSentenceWith(out, defaultClothing, "clothing", "wearing", "wears", "dressed"),
		FacialFeatures:      firstSentenceWith(out, defaultFacial, "face", "facial", "expression", "eyes"),
		Accessories:         firstSentenceWith(out, defaultAccessories, "accessor", "jewelry", "glasses", "watch"),
		UniqueIdentifiers:   identifiers,
	}
}

func firstSentenceWith(text, fallback string, keywords ...string) string {
	if found := utils.SentencesContaining(text, 1, keywords...); len(found) > 0 {
		return found[0]
	}
	return fallback
}

// genericDescription is the total fallback: a reusable description built
// from the character's label alone.
func genericDescription(id, name string) schema.CharacterDescription {
	detailed := fmt.Sprintf(
		"%s, %s, with %s and a %s, wearing %s and %s.",
		name, defaultAge, defaultHair, defaultFacial, defaultClothing, defaultAccessories,
	)
	return schema.CharacterDescription{
		CharacterID:         id,
		Name:                name,
		DetailedDescription: detailed,
		Age:                 defaultAge,
		Hair:                defaultHair,
		Clothing:            defaultClothing,
		FacialFeatures:      defaultFacial,
		Accessories:         defaultAccessories,
		UniqueIdentifiers:   []string{fmt.Sprintf("recognizable as the same %s in every scene", name)},
	}
}
