package structgen

import "github.com/youthtopro/swotter/internal/llm"

// questionList is the schema fragment for one category's question list:
// exactly five question/sample-answer pairs.
func questionList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "A reflective question tailored to the career goal, one sentence",
				},
				"sample_answer": map[string]any{
					"type":        "string",
					"description": "A short illustrative answer the mentee can rewrite in their own words",
				},
			},
			"required":             []any{"question", "sample_answer"},
			"additionalProperties": false,
		},
		"minItems": 5,
		"maxItems": 5,
	}
}

// StructureSchema defines the JSON schema for a full SWOT question set.
var StructureSchema = &llm.Schema{
	Name:        "swot-structure",
	Description: "A personalized SWOT self-assessment question set for a career goal",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths":     questionList("Questions probing skills, achievements, and qualities relevant to the goal"),
			"weaknesses":    questionList("Questions probing gaps, habits, and challenges relevant to the goal"),
			"opportunities": questionList("Questions probing trends, resources, and openings relevant to the goal"),
			"threats":       questionList("Questions probing external risks and obstacles relevant to the goal"),
		},
		"required":             []any{"strengths", "weaknesses", "opportunities", "threats"},
		"additionalProperties": false,
	},
}
