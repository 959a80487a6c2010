package analysis

import (
	"context"
	"strings"
	"testing"
)

func TestEnhanceFallback(t *testing.T) {
	a := failingAnalyzer()
	got, err := a.Enhance(context.Background(), "A person dancing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got.EnhancedPrompt, "A person dancing") {
		t.Errorf("fallback must keep the original prompt: %q", got.EnhancedPrompt)
	}
	if !strings.Contains(got.EnhancedPrompt, "cinematic") {
		t.Errorf("fallback suffix missing: %q", got.EnhancedPrompt)
	}
	if got.Analysis == nil {
		t.Fatal("enhancement must carry the analysis")
	}
	checkResultInvariants(t, got.Analysis)

	var added bool
	for _, ch := range got.Changes {
		if ch.Op == 1 {
			added = true
		}
		if ch.Op < -1 || ch.Op > 1 {
			t.Errorf("invalid op %d", ch.Op)
		}
	}
	if !added {
		t.Error("suffix fallback must produce added words in the delta")
	}
}

func TestEnhanceUsesModelOutput(t *testing.T) {
	a := NewAnalyzer(&stubInferencer{fn: func(system, user string) (string, error) {
		if system == enhancePrompt {
			return `"A person dancing in golden hour light, slow dolly-in"`, nil
		}
		return "", errServiceDown
	}})
	got, err := a.Enhance(context.Background(), "A person dancing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got.EnhancedPrompt, `"`) {
		t.Errorf("surrounding quotes not stripped: %q", got.EnhancedPrompt)
	}
	if !strings.Contains(got.EnhancedPrompt, "golden hour") {
		t.Errorf("model output ignored: %q", got.EnhancedPrompt)
	}
}

func TestEnhanceValidation(t *testing.T) {
	a := failingAnalyzer()
	if _, err := a.Enhance(context.Background(), ""); err == nil {
		t.Error("empty prompt must fail validation")
	}
}

func TestEnhanceTokenBudgetBounds(t *testing.T) {
	short := enhanceTokenBudget("hi")
	long := enhanceTokenBudget(strings.Repeat("word ", 2000))
	if short < 200 || short > 600 {
		t.Errorf("short budget %d out of bounds", short)
	}
	if long != 600 {
		t.Errorf("long budget = %d, want 600", long)
	}
}
