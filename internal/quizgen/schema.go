package quizgen

import "github.com/shardulfunde/vidya/internal/genpipe"

// QuestionDefinition is the JSON schema fragment for a single
// multiple-choice question. Shared with the learning-path topic schema.
func QuestionDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Give 4 options",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Index of the correct option",
			},
		},
		"required":             []any{"question", "options", "correct_index"},
		"additionalProperties": false,
	}
}

// TestSchema defines the JSON schema for generated tests.
var TestSchema = &genpipe.Schema{
	Name:        "test",
	Description: "A multiple-choice test on a single topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{
				"type":        "string",
				"description": "Topic of the test",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Difficulty level of the test",
			},
			"questions": map[string]any{
				"type":        "array",
				"items":       QuestionDefinition(),
				"description": "The generated MCQ questions",
			},
		},
		"required":             []any{"topic", "difficulty", "questions"},
		"additionalProperties": false,
	},
}

// AnalysisSchema defines the JSON schema for test analysis results.
var AnalysisSchema = &genpipe.Schema{
	Name:        "test-analysis",
	Description: "Structured analysis of a completed test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score_commentary": map[string]any{
				"type":        "string",
				"description": "A brief, encouraging comment on the score",
			},
			"weak_concepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of specific sub-topics the user struggled with",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of concepts the user understood well",
			},
			"study_plan": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3 actionable bullet points to improve",
			},
		},
		"required":             []any{"score_commentary", "weak_concepts", "strengths", "study_plan"},
		"additionalProperties": false,
	},
}
