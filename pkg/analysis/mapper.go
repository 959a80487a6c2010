package analysis

import "reelsmith/pkg/schema"

// MapScenesToCharacters associates character ids with scene numbers.
// Current policy: every character appears in every scene. There is no
// per-scene casting logic yet; TODO: per-scene character selection once
// the breakdown output carries character mentions.
func MapScenesToCharacters(scenes []schema.SceneInfo, characters []schema.CharacterDescription) map[int][]string {
	mappings := make(map[int][]string, len(scenes))
	ids := make([]string, 0, len(characters))
	for _, ch := range characters {
		ids = append(ids, ch.CharacterID)
	}
	for _, scene := range scenes {
		mappings[scene.SceneNumber] = append([]string(nil), ids...)
	}
	return mappings
}
