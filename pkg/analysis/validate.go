package analysis

import (
	"strings"
	"unicode/utf8"

	"reelsmith/pkg/schema"
)

// forbiddenWords rejects prompts that the downstream video models refuse
// anyway; matching is lowercase substring.
var forbiddenWords = []string{
	"gore",
	"beheading",
	"child abuse",
	"csam",
	"terrorist attack",
	"school shooting",
	"suicide method",
	"rape",
}

// Validate sanitizes raw input and enforces the prompt contract:
// non-empty, at most schema.MaxPromptLength characters, no blocklisted
// content. It returns the sanitized prompt. No side effects.
func Validate(raw string) (string, error) {
	prompt := Sanitize(raw)
	if prompt == "" {
		return "", schema.NewValidationError(schema.EmptyPrompt, "prompt is empty")
	}
	n := utf8.RuneCountInString(prompt)
	if n < 1 {
		return "", schema.NewValidationError(schema.TooShort, "prompt is too short")
	}
	if n > schema.MaxPromptLength {
		return "", schema.NewValidationError(schema.TooLong, "prompt exceeds %d characters", schema.MaxPromptLength)
	}
	lower := strings.ToLower(prompt)
	for _, word := range forbiddenWords {
		if strings.Contains(lower, word) {
			return "", schema.NewValidationError(schema.ForbiddenContent, "prompt contains forbidden content")
		}
	}
	return prompt, nil
}
