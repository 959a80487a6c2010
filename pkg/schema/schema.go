package schema

import (
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// CharacterList is the preferred JSON shape of the character identification
// call. The analyzer still parses free text when the model ignores it.
type CharacterList struct {
	Characters []string `json:"characters" jsonschema_description:"Names or role labels of the human characters found in the prompt, animals and objects excluded"`
}

var characterListSchema = generateSchema[CharacterList]()

// CharacterListResponseFormat biases the identification call toward the
// CharacterList shape via structured outputs.
func CharacterListResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	p := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "character_list",
		Description: openai.String("Human characters identified in a video prompt"),
		Schema:      characterListSchema,
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: p},
	}
}
