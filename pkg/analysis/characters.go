package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"reelsmith/pkg/schema"
	"reelsmith/pkg/utils"
)

// Identification is the outcome of the human-character scan.
type Identification struct {
	RequiresConsistency bool
	Characters          []string
}

// humanRoleKeywords recognizes people by role. The list mirrors the role
// cues the identification prompt asks the model to use.
var humanRoleKeywords = []string{
	"person", "man", "woman", "chef", "teacher", "friend", "worker",
	"guy", "girl", "doctor", "student", "dancer", "athlete",
}

// animalKeywords marks content whose subjects are not people. A line or
// prompt about these never yields a character.
var animalKeywords = []string{"capybara", "dog", "cat", "animal"}

var noCharacterPhrases = []string{
	"no human characters",
	"no characters found",
	"no people",
	"none found",
}

// IdentifyCharacters finds the human characters in a prompt and decides
// whether their appearance must stay consistent across scenes. Service
// failure falls back to the keyword scan; this never errors.
func (a *Analyzer) IdentifyCharacters(ctx context.Context, prompt string) Identification {
	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(200),
		Temperature:         openai.Float(0.3),
		ResponseFormat:      schema.CharacterListResponseFormat(),
	}
	out, err := a.infer(ctx, params, identifyPrompt, prompt)
	if err != nil {
		log.Warn("character identification inference failed, using heuristic", "error", err)
		return identifyHeuristic(prompt)
	}

	characters := parseCharacterList(out)
	return Identification{
		RequiresConsistency: len(characters) > 0 && hasConsistencyIndicator(prompt),
		Characters:          characters,
	}
}

// parseCharacterList reads the identification response: structured JSON
// when the model honors the response format, line scanning otherwise.
func parseCharacterList(out string) []string {
	cleaned := utils.CleanJSON(out)

	var list schema.CharacterList
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil && list.Characters != nil {
		return capCharacters(list.Characters, schema.MaxCharacters)
	}

	if utils.StringContains(out, false, noCharacterPhrases...) {
		return nil
	}

	var characters []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `-*•1234567890. "`)
		if line == "" {
			continue
		}
		if utils.StringContains(line, false, animalKeywords...) {
			continue
		}
		if !utils.StringContains(line, false, humanRoleKeywords...) {
			continue
		}
		if nearDuplicate(characters, line) {
			continue
		}
		characters = append(characters, line)
		if len(characters) == schema.MaxCharacters {
			break
		}
	}
	return characters
}

// identifyHeuristic scans the prompt itself for human-role keywords.
// Animal-only prompts yield no characters at all.
func identifyHeuristic(prompt string) Identification {
	lower := strings.ToLower(prompt)

	hasAnimal := utils.StringContains(lower, true, animalKeywords...)
	var characters []string
	for _, role := range humanRoleKeywords {
		if strings.Contains(lower, role) {
			characters = append(characters, role)
			if len(characters) == 2 {
				break
			}
		}
	}
	if hasAnimal && len(characters) == 0 {
		return Identification{}
	}

	consistency := len(characters) > 0 &&
		(containsPronoun(lower) || utils.StringContains(lower, true, "then", "next", "after"))
	return Identification{
		RequiresConsistency: consistency,
		Characters:          characters,
	}
}

// hasConsistencyIndicator reports whether a prompt refers back to the same
// person across moments: sequence words, third-person pronouns, or an
// explicit mention of sameness.
func hasConsistencyIndicator(prompt string) bool {
	lower := strings.ToLower(prompt)
	if utils.StringContains(lower, true, "then", "next", "after", "later", "continues", "goes") {
		return true
	}
	if containsPronoun(lower) {
		return true
	}
	return utils.StringContains(lower, true, "same", "character", "person")
}

func containsPronoun(lower string) bool {
	return utils.StringContains(lower, true, "he ", "she ", "they ", "him ", "her ", "them ")
}

func capCharacters(in []string, limit int) []string {
	var out []string
	for _, name := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if utils.StringContains(name, false, animalKeywords...) {
			continue
		}
		if nearDuplicate(out, name) {
			continue
		}
		out = append(out, name)
		if len(out) == limit {
			break
		}
	}
	return out
}

// nearDuplicate reports whether name is close enough to an accepted
// character that describing both would produce the same person twice.
func nearDuplicate(accepted []string, name string) bool {
	for _, existing := range accepted {
		if utils.Similarity(existing, name) >= 0.8 {
			return true
		}
	}
	return false
}
