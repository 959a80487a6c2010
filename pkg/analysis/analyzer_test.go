package analysis

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"reelsmith/pkg/schema"
)

func checkResultInvariants(t *testing.T, result *schema.SceneAnalysisResult) {
	t.Helper()
	if result == nil {
		t.Fatal("nil result")
	}
	if result.SceneCount != len(result.Scenes) {
		t.Errorf("sceneCount %d != len(scenes) %d", result.SceneCount, len(result.Scenes))
	}
	if result.SceneCount < 1 || result.SceneCount > schema.MaxScenes {
		t.Errorf("sceneCount %d out of bounds", result.SceneCount)
	}
	if !result.IsMultiScene && result.SceneCount != 1 {
		t.Errorf("single scene result with count %d", result.SceneCount)
	}
	known := make(map[string]bool, len(result.CharacterDescriptions))
	for i, d := range result.CharacterDescriptions {
		wantID := "char_" + string(rune('1'+i))
		if d.CharacterID != wantID {
			t.Errorf("characterId[%d] = %q, want %q", i, d.CharacterID, wantID)
		}
		known[d.CharacterID] = true
	}
	for sceneNumber, ids := range result.SceneCharacterMappings {
		if sceneNumber < 1 || sceneNumber > result.SceneCount {
			t.Errorf("mapping references scene %d outside 1..%d", sceneNumber, result.SceneCount)
		}
		for _, id := range ids {
			if !known[id] {
				t.Errorf("mapping references unknown character %q", id)
			}
		}
	}
	for i, s := range result.Scenes {
		if s.SceneNumber != i+1 {
			t.Errorf("sceneNumber[%d] = %d", i, s.SceneNumber)
		}
		if s.Duration != schema.SceneDuration {
			t.Errorf("duration[%d] = %d", i, s.Duration)
		}
	}
}

func TestAnalyzeValidation(t *testing.T) {
	a := failingAnalyzer()
	for _, prompt := range []string{"", "   ", strings.Repeat("x", 500)} {
		if _, err := a.Analyze(context.Background(), prompt); err == nil {
			t.Errorf("Analyze(%.20q) should fail validation", prompt)
		} else if _, ok := schema.AsValidationError(err); !ok {
			t.Errorf("Analyze(%.20q) error = %v, want ValidationError", prompt, err)
		}
	}
}

func TestAnalyzeFullFallback(t *testing.T) {
	// Every completion call fails; the result must still be fully formed.
	a := failingAnalyzer()
	result, err := a.Analyze(context.Background(), chefPrompt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkResultInvariants(t, result)
	if !result.IsMultiScene {
		t.Error("chef prompt should be multi-scene via the heuristic gate")
	}
	if result.RecommendedApproach != schema.ApproachMultiScene {
		t.Errorf("approach = %q", result.RecommendedApproach)
	}
	if len(result.CharacterDescriptions) == 0 {
		t.Error("chef should be identified even with the service down")
	}
}

func TestAnalyzeSingleSceneFallback(t *testing.T) {
	a := failingAnalyzer()
	result, err := a.Analyze(context.Background(), "Capybaras jumping on trampoline, one falls off")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkResultInvariants(t, result)
	if result.IsMultiScene {
		t.Error("capybara prompt must stay single scene")
	}
	if len(result.CharacterDescriptions) != 0 {
		t.Errorf("animal-only prompt must have no characters, got %v", result.CharacterDescriptions)
	}
	if result.RequiresCharacterConsistency {
		t.Error("no characters means no consistency requirement")
	}
	if result.Complexity != schema.ComplexitySimple {
		t.Errorf("complexity = %q", result.Complexity)
	}
}

func TestAnalyzeDeterministicFallback(t *testing.T) {
	// Two fresh analyzers, no cache sharing: the pure heuristic paths must
	// agree exactly.
	first, err := failingAnalyzer().Analyze(context.Background(), chefPrompt)
	if err != nil {
		t.Fatal(err)
	}
	second, err := failingAnalyzer().Analyze(context.Background(), chefPrompt)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("fallback analysis not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeCachesResults(t *testing.T) {
	calls := 0
	a := NewAnalyzer(&stubInferencer{fn: func(string, string) (string, error) {
		calls++
		return "", errServiceDown
	}})
	if _, err := a.Analyze(context.Background(), "A person dancing"); err != nil {
		t.Fatal(err)
	}
	after := calls
	if _, err := a.Analyze(context.Background(), "A person dancing"); err != nil {
		t.Fatal(err)
	}
	if calls != after {
		t.Errorf("second identical analyze made %d extra completion calls", calls-after)
	}
}

func TestAnalyzeMapsEveryCharacterToEveryScene(t *testing.T) {
	a := failingAnalyzer()
	result, err := a.Analyze(context.Background(), chefPrompt)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.CharacterDescriptions) == 0 {
		t.Skip("no characters identified")
	}
	for n := 1; n <= result.SceneCount; n++ {
		ids := result.SceneCharacterMappings[n]
		if len(ids) != len(result.CharacterDescriptions) {
			t.Errorf("scene %d maps %d characters, want %d", n, len(ids), len(result.CharacterDescriptions))
		}
	}
}
