package grading

import "github.com/mathcoach/mathcoach/internal/llm"

// Schema defines the JSON shape for LLM evaluation responses. score
// accepts a number or a numeric string: models emit both, and the
// service clamps either into [0, 100].
var Schema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A structured grade for a photographed handwritten solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"result": map[string]any{
				"type":        "string",
				"enum":        []any{"correct", "partial", "incorrect"},
				"description": "The grade category",
			},
			"score": map[string]any{
				"type":        []any{"number", "string"},
				"description": "Numeric score from 0 to 100",
			},
			"feedbackSummary": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "1-2 sentences of feedback in Spanish",
			},
		},
		"required":             []any{"result", "score", "feedbackSummary"},
		"additionalProperties": false,
	},
}
