package learnpath

import (
	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/quizgen"
)

// TopicListSchema defines the JSON schema for the topic planner's output.
var TopicListSchema = &genpipe.Schema{
	Name:        "topic-list",
	Description: "Ordered list of topic names for a learning path",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of topics to be covered in the learning path",
			},
		},
		"required":             []any{"topics"},
		"additionalProperties": false,
	},
}

// TopicSchema defines the JSON schema for a single expanded topic.
// The practice question bounds are structural; the 6-8 topic count of a
// freshly planned path is requested by the planner prompt, not enforced
// by extraction.
var TopicSchema = &genpipe.Schema{
	Name:        "topic",
	Description: "One learning-path topic with explanation and practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic_name": map[string]any{
				"type":        "string",
				"description": "Name of the topic",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Detailed explanation of the topic",
			},
			"practice_questions": map[string]any{
				"type":        "array",
				"items":       quizgen.QuestionDefinition(),
				"minItems":    2,
				"maxItems":    5,
				"description": "2-3 easy practice questions for the topic",
			},
		},
		"required":             []any{"topic_name", "explanation", "practice_questions"},
		"additionalProperties": false,
	},
}
