package mcq

import "github.com/abhisek/mcqgen/internal/llm"

// BatchSchema is the JSON schema for the model's question batch. The
// top level is an object (not a bare array) because OpenAI's strict
// structured output only accepts object roots; the parser also accepts
// a bare array for models that ignore the schema.
var BatchSchema = &llm.Schema{
	Name:        "mcq-batch",
	Description: "A batch of multiple-choice questions generated from a source text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 candidate answers, in presentation order",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, verbatim",
						},
					},
					"required":             []any{"question", "options", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
