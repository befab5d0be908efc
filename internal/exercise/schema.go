package exercise

import "github.com/mathcoach/mathcoach/internal/llm"

// Schema defines the JSON shape for LLM exercise generation responses.
// exerciseType is deliberately a plain string here: a tag outside the
// allowed set is repaired with a computed hint instead of discarding the
// whole exercise, so schema validation must not reject it.
var Schema = &llm.Schema{
	Name:        "math-exercise",
	Description: "A single calculus practice exercise with a classification tag",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"statement": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The exercise statement in Spanish, plain text math notation, exactly one question",
			},
			"exerciseType": map[string]any{
				"type":        "string",
				"description": "One of: basic_procedural, mixed_rules, applied_word_problem, exam_multi_step",
			},
		},
		"required":             []any{"statement", "exerciseType"},
		"additionalProperties": false,
	},
}
