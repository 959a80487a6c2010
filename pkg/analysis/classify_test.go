package analysis

import (
	"context"
	"strings"
	"testing"

	"reelsmith/pkg/schema"
)

// Satisfies all three multi-scene gate conditions: two-plus sequence
// keywords, over 250 characters, and "then " alongside after/later/finally.
const chefPrompt = "First, the chef preps the ingredients and lays them out on the counter while explaining each step to the camera in detail. Then after that, he accidentally starts a small fire on the stove and panics while trying to put it out with a towel. Later the smoke fills the kitchen, and finally the fire department arrives to save the day."

func TestMultiSceneGate(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   bool
	}{
		{"short animal prompt", "Capybaras jumping on trampoline, one falls off", false},
		{"chef story", chefPrompt, true},
		{"long but no sequence words", strings.Repeat("a calm lake at sunrise with mist ", 10), false},
		{"keywords but short", "First this, then after that something else, finally done", false},
		{
			name:   "length counts characters not bytes",
			prompt: "First this happens, then after that another thing, later finally " + strings.Repeat("語", 70),
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := multiSceneGate(tt.prompt); got != tt.want {
				t.Errorf("multiSceneGate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyHeuristicBounds(t *testing.T) {
	prompts := []string{
		"",
		"A person dancing",
		"Capybaras jumping on trampoline, one falls off",
		chefPrompt,
		strings.Repeat("then later finally ", 30),
	}
	for _, prompt := range prompts {
		got := classifyHeuristic(prompt)
		if got.SceneCount < 1 || got.SceneCount > schema.MaxScenes {
			t.Errorf("classifyHeuristic(%.30q): sceneCount %d out of bounds", prompt, got.SceneCount)
		}
		if !got.IsMultiScene && got.SceneCount != 1 {
			t.Errorf("classifyHeuristic(%.30q): single scene but count %d", prompt, got.SceneCount)
		}
	}
}

func TestClassifyHeuristicScenarios(t *testing.T) {
	t.Run("capybara prompt stays single scene", func(t *testing.T) {
		got := classifyHeuristic("Capybaras jumping on trampoline, one falls off")
		if got.IsMultiScene {
			t.Error("expected single scene")
		}
		if got.SceneCount != 1 {
			t.Errorf("sceneCount = %d, want 1", got.SceneCount)
		}
		if got.Complexity != schema.ComplexitySimple {
			t.Errorf("complexity = %q, want simple", got.Complexity)
		}
	})

	t.Run("chef story goes multi-scene", func(t *testing.T) {
		got := classifyHeuristic(chefPrompt)
		if !got.IsMultiScene {
			t.Fatal("expected multi-scene")
		}
		if got.SceneCount < 2 || got.SceneCount > schema.MaxScenes {
			t.Errorf("sceneCount = %d, want 2..%d", got.SceneCount, schema.MaxScenes)
		}
		if got.Complexity == schema.ComplexitySimple {
			t.Error("multi-scene result must not be simple")
		}
	})
}

func TestClassifyFallsBackOnServiceFailure(t *testing.T) {
	a := failingAnalyzer()
	got := a.Classify(context.Background(), chefPrompt)
	want := classifyHeuristic(chefPrompt)
	if got != want {
		t.Errorf("fallback classification = %+v, want %+v", got, want)
	}
}

func TestParseClassification(t *testing.T) {
	t.Run("model recommendation alone never fragments", func(t *testing.T) {
		got := parseClassification("multi-scene, 4 scenes", "A person dancing")
		if got.IsMultiScene {
			t.Error("gate must hold even when the model recommends multi-scene")
		}
	})

	t.Run("explicit count honored when gated", func(t *testing.T) {
		got := parseClassification("Recommendation: multi-scene with 3 scenes.", chefPrompt)
		if !got.IsMultiScene || got.SceneCount != 3 {
			t.Errorf("got %+v, want multi with 3 scenes", got)
		}
		if got.Complexity != schema.ComplexityComplex {
			t.Errorf("complexity = %q, want complex", got.Complexity)
		}
	})

	t.Run("absurd count falls back to indicators", func(t *testing.T) {
		got := parseClassification("multi-scene, 40 scenes", chefPrompt)
		if got.SceneCount < 2 || got.SceneCount > schema.MaxScenes {
			t.Errorf("sceneCount = %d, want 2..%d", got.SceneCount, schema.MaxScenes)
		}
	})

	t.Run("single scene recommendation", func(t *testing.T) {
		got := parseClassification("single scene", chefPrompt)
		if got.IsMultiScene {
			t.Error("expected single scene")
		}
	})
}
