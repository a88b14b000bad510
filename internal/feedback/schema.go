package feedback

import "github.com/shardulfunde/vidya/internal/genpipe"

// FeedbackSchema defines the JSON schema for quiz feedback.
var FeedbackSchema = &genpipe.Schema{
	Name:        "quiz-feedback",
	Description: "Structured feedback on a quiz attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "The topic of the quiz",
			},
			"understanding_level": map[string]any{
				"type":        "string",
				"description": "Overall understanding: Beginner, Intermediate, or Advanced",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of specific concepts the user understands well",
			},
			"weaknesses": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of specific concepts the user struggled with",
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Actionable study tips to improve",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "A short, encouraging summary paragraph",
			},
		},
		"required":             []any{"topic", "understanding_level", "strengths", "weaknesses", "suggestions", "feedback"},
		"additionalProperties": false,
	},
}
