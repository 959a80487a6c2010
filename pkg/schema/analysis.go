package schema

// SceneDuration is the fixed length of every generated scene in seconds.
// Short-form content is planned as independent 8-second segments.
const SceneDuration = 8

const (
	// MaxScenes caps how far a prompt can be fragmented.
	MaxScenes = 5
	// MaxCharacters caps how many characters receive descriptions.
	MaxCharacters = 3
	// MaxPromptLength is the upper bound on a sanitized prompt.
	MaxPromptLength = 400
)

type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

type Approach string

const (
	ApproachSingle     Approach = "single"
	ApproachMultiScene Approach = "multi-scene"
)

// AnalysisRequest is the body of POST /api/analyze and /api/enhance.
type AnalysisRequest struct {
	Prompt string `json:"prompt"`
}

// SceneInfo is one independently describable video segment.
type SceneInfo struct {
	SceneNumber    int      `json:"sceneNumber"`
	Description    string   `json:"description"`
	Duration       int      `json:"duration"`
	Characters     []string `json:"characters"`
	VisualElements []string `json:"visualElements"`
	AudioElements  []string `json:"audioElements"`
}

// CharacterDescription holds the reusable visual identity of one human
// character. The same wording is meant to be pasted verbatim into every
// scene prompt so an image/video model renders a stable face.
type CharacterDescription struct {
	CharacterID         string   `json:"characterId"`
	Name                string   `json:"name"`
	DetailedDescription string   `json:"detailedDescription"`
	Age                 string   `json:"age"`
	Hair                string   `json:"hair"`
	Clothing            string   `json:"clothing"`
	FacialFeatures      string   `json:"facialFeatures"`
	Accessories         string   `json:"accessories"`
	UniqueIdentifiers   []string `json:"uniqueIdentifiers"`
}

// SceneAnalysisResult is the full structured outcome of one analysis.
// It is assembled within a single request and never persisted.
type SceneAnalysisResult struct {
	IsMultiScene                 bool                   `json:"isMultiScene"`
	SceneCount                   int                    `json:"sceneCount"`
	Scenes                       []SceneInfo            `json:"scenes"`
	Complexity                   Complexity             `json:"complexity"`
	RecommendedApproach          Approach               `json:"recommendedApproach"`
	RequiresCharacterConsistency bool                   `json:"requiresCharacterConsistency"`
	CharacterDescriptions        []CharacterDescription `json:"characterDescriptions"`
	SceneCharacterMappings       map[int][]string       `json:"sceneCharacterMappings"`
}

// AnalyzeResponse is the wire shape of POST /api/analyze.
type AnalyzeResponse struct {
	Success  bool                 `json:"success"`
	Analysis *SceneAnalysisResult `json:"analysis,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// WordChange is a single word-level delta between the original and the
// enhanced prompt. Op is -1 for removed, 0 for unchanged, +1 for added.
type WordChange struct {
	Op   int    `json:"op"`
	Text string `json:"text"`
}

// EnhanceResponse is the wire shape of POST /api/enhance.
type EnhanceResponse struct {
	Success        bool                 `json:"success"`
	EnhancedPrompt string               `json:"enhancedPrompt,omitempty"`
	Changes        []WordChange         `json:"changes,omitempty"`
	Analysis       *SceneAnalysisResult `json:"analysis,omitempty"`
	Error          string               `json:"error,omitempty"`
}
