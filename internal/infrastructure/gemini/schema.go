package gemini

import "google.golang.org/genai"

// Top-level fields of the analysis object, in the order the model should emit them
var analysisFields = []string{
	"productName",
	"variants",
	"prices",
	"pros",
	"cons",
	"alternativeProducts",
}

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func objectArray(fields ...string) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(fields))
	for _, f := range fields {
		properties[f] = stringSchema()
	}
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:             genai.TypeObject,
			Properties:       properties,
			Required:         fields,
			PropertyOrdering: fields,
		},
	}
}

// AnalysisSchema describes the response shape Gemini must produce.
// It mirrors domain.AnalysisResult field for field.
func AnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"productName": stringSchema(),
			"variants":    objectArray("name", "description"),
			"prices":      objectArray("store", "price", "url"),
			"pros": {
				Type:  genai.TypeArray,
				Items: stringSchema(),
			},
			"cons": {
				Type:  genai.TypeArray,
				Items: stringSchema(),
			},
			"alternativeProducts": objectArray("name", "price", "reason"),
		},
		Required:         append([]string(nil), analysisFields...),
		PropertyOrdering: append([]string(nil), analysisFields...),
	}
}
