package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"reelsmith/pkg/schema"
	"reelsmith/pkg/utils"
)

const maxSceneDescriptionLength = 300

var (
	scenePrefixRX = regexp.MustCompile(`(?i)^scene:\s*`)
	sceneSplitRX  = regexp.MustCompile(`(?i)scene\s*\d+[:.]?\s*`)
)

// BreakdownScenes splits a prompt into exactly sceneCount scenes with
// 1-based numbering. sceneCount==1 wraps the whole prompt; the multi-scene
// path asks the completion service for SCENE:-prefixed lines and degrades
// to deterministic prompt slicing when the call fails.
func (a *Analyzer) BreakdownScenes(ctx context.Context, prompt string, sceneCount int) []schema.SceneInfo {
	if sceneCount <= 1 {
		return []schema.SceneInfo{newScene(1, prompt)}
	}

	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(600),
		Temperature:         openai.Float(0.5),
	}
	user := fmt.Sprintf("Video idea: %s\n\nSplit into exactly %d scenes.", prompt, sceneCount)
	out, err := a.infer(ctx, params, breakdownPrompt, user)
	if err != nil {
		log.Warn("scene breakdown inference failed, slicing prompt", "scenes", sceneCount, "error", err)
		return sliceScenes(prompt, sceneCount)
	}

	scenes := parseSceneLines(out)
	if len(scenes) == 0 {
		scenes = splitOnSceneMarkers(out)
	}
	if len(scenes) > sceneCount {
		scenes = scenes[:sceneCount]
	}

	infos := make([]schema.SceneInfo, 0, sceneCount)
	for i, desc := range scenes {
		info := newScene(i+1, desc)
		if visual := utils.SentencesContaining(desc, 3, "visual", "camera", "lighting", "shot"); visual != nil {
			info.VisualElements = visual
		}
		if audio := utils.SentencesContaining(desc, 3, "audio", "sound", "music"); audio != nil {
			info.AudioElements = audio
		}
		infos = append(infos, info)
	}
	// Pad with continuation placeholders so the count always matches.
	for n := len(infos) + 1; n <= sceneCount; n++ {
		infos = append(infos, newScene(n, fmt.Sprintf("Additional scene %d continuation", n)))
	}
	return infos
}

// parseSceneLines collects lines carrying the literal SCENE: prefix,
// case-insensitive, stripping the prefix and capping the description.
func parseSceneLines(out string) []string {
	var scenes []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !scenePrefixRX.MatchString(line) {
			continue
		}
		desc := strings.TrimSpace(scenePrefixRX.ReplaceAllString(line, ""))
		if desc == "" {
			continue
		}
		scenes = append(scenes, utils.LimitStr(desc, maxSceneDescriptionLength))
	}
	return scenes
}

// splitOnSceneMarkers recovers scenes from responses that number them
// inline ("Scene 1: ...") instead of using the requested prefix.
func splitOnSceneMarkers(out string) []string {
	var scenes []string
	for _, part := range sceneSplitRX.Split(out, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		scenes = append(scenes, part)
	}
	return scenes
}

// sliceScenes is the deterministic service-failure fallback: the prompt
// cut into sceneCount equal-length rune chunks.
func sliceScenes(prompt string, sceneCount int) []schema.SceneInfo {
	runes := []rune(prompt)
	chunk := (len(runes) + sceneCount - 1) / sceneCount
	if chunk < 1 {
		chunk = 1
	}

	scenes := make([]schema.SceneInfo, 0, sceneCount)
	for i := 0; i < sceneCount; i++ {
		start := i * chunk
		if start > len(runes) {
			start = len(runes)
		}
		end := start + chunk
		if end > len(runes) {
			end = len(runes)
		}
		desc := strings.TrimSpace(string(runes[start:end]))
		if desc == "" {
			desc = fmt.Sprintf("Additional scene %d continuation", i+1)
		}
		scenes = append(scenes, newScene(i+1, desc))
	}
	return scenes
}

func newScene(number int, description string) schema.SceneInfo {
	return schema.SceneInfo{
		SceneNumber:    number,
		Description:    description,
		Duration:       schema.SceneDuration,
		Characters:     []string{},
		VisualElements: []string{},
		AudioElements:  []string{},
	}
}
