package analysis

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"reelsmith/pkg/inference"
	"reelsmith/pkg/schema"
)

// Analyzer turns a raw prompt into a SceneAnalysisResult. It owns the
// completion-service dependency and is constructed once at process start;
// it keeps no per-request state. Completed results are cached briefly by
// sanitized prompt and concurrent identical prompts are coalesced.
type Analyzer struct {
	inf     inference.Inferencer
	limiter *rate.Limiter
	cache   *gocache.Cache
	group   singleflight.Group
}

func NewAnalyzer(inf inference.Inferencer) *Analyzer {
	return &Analyzer{
		inf:   inf,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// SetPacing spaces outbound completion calls at least interval apart,
// with a small burst allowance.
func (a *Analyzer) SetPacing(interval time.Duration) {
	if interval <= 0 {
		a.limiter = nil
		return
	}
	a.limiter = rate.NewLimiter(rate.Every(interval), 2)
}

// infer is the single funnel for outbound completion calls.
func (a *Analyzer) infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	return a.inf.Infer(ctx, params, system, user)
}

// Analyze validates raw input and runs the full pipeline. The only error
// it can return is a *schema.ValidationError: every completion failure is
// absorbed by a component fallback, so a valid prompt always yields a
// fully formed result.
func (a *Analyzer) Analyze(ctx context.Context, raw string) (*schema.SceneAnalysisResult, error) {
	prompt, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	if cached, ok := a.cache.Get(prompt); ok {
		return cached.(*schema.SceneAnalysisResult), nil
	}

	v, err, _ := a.group.Do(prompt, func() (any, error) {
		result := a.analyze(ctx, prompt)
		a.cache.SetDefault(prompt, result)
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*schema.SceneAnalysisResult), nil
}

// analyze runs the component pipeline over a sanitized prompt. Calls to
// the completion service are issued sequentially: classification, character
// identification, one description per character, scene breakdown.
func (a *Analyzer) analyze(ctx context.Context, prompt string) *schema.SceneAnalysisResult {
	started := time.Now()

	classification := a.Classify(ctx, prompt)
	ident := a.IdentifyCharacters(ctx, prompt)

	descriptions := make([]schema.CharacterDescription, 0, len(ident.Characters))
	if len(ident.Characters) > 0 {
		descriptions = a.DescribeCharacters(ctx, prompt, ident.Characters)
	}

	scenes := a.BreakdownScenes(ctx, prompt, classification.SceneCount)
	mappings := MapScenesToCharacters(scenes, descriptions)
	for i := range scenes {
		if ids, ok := mappings[scenes[i].SceneNumber]; ok && len(ids) > 0 {
			scenes[i].Characters = ids
		}
	}

	approach := schema.ApproachSingle
	if classification.IsMultiScene {
		approach = schema.ApproachMultiScene
	}

	log.Info("analysis complete",
		"multiScene", classification.IsMultiScene,
		"scenes", len(scenes),
		"characters", len(descriptions),
		"consistency", ident.RequiresConsistency,
		"took", time.Since(started).Round(time.Millisecond),
	)

	return &schema.SceneAnalysisResult{
		IsMultiScene:                 classification.IsMultiScene,
		SceneCount:                   len(scenes),
		Scenes:                       scenes,
		Complexity:                   classification.Complexity,
		RecommendedApproach:          approach,
		RequiresCharacterConsistency: ident.RequiresConsistency,
		CharacterDescriptions:        descriptions,
		SceneCharacterMappings:       mappings,
	}
}
