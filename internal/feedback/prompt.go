package feedback

import "github.com/shardulfunde/vidya/internal/genpipe"

var feedbackTemplate = genpipe.Template{
	ID: "quiz-feedback",
	Text: `You are an expert learning mentor.
Analyze the user's quiz attempt on the topic: "{topic}" and generate structured feedback.

DATA:
---
ALL QUESTIONS:
{questions}

CORRECTLY ANSWERED:
{correct_questions}

INCORRECTLY ANSWERED:
{incorrect_questions}
---

INSTRUCTIONS:
1. Analyze the "INCORRECTLY ANSWERED" section to identify specific gaps in knowledge.
2. Analyze the "CORRECTLY ANSWERED" section to identify concepts they have mastered.
3. Provide specific "Suggestions" on what to study next based on the errors.

{format_instructions}`,
	Fields: []string{"topic", "questions", "correct_questions", "incorrect_questions"},
}
