package learnpath

import (
	"strconv"
	"strings"

	"github.com/shardulfunde/vidya/internal/genpipe"
)

var topicPlannerTemplate = genpipe.Template{
	ID: "topic-planner",
	Text: `You are an expert curriculum designer.

Task:
Generate a learning topic plan for the learner described below.

Input:
Subject: {subject}
Learner age: {year_old}
Preferred language: {preferred_language}
Focus areas: {focus_areas}

Strict rules:
- Generate exactly 6 to 8 topics.
- Topics must be ordered from basic to advanced.
- Topic names must be short, clear, and non-overlapping.
- Do NOT include explanations, questions, examples, or numbering.
- If focus areas are provided, ensure each focus area is covered by at least one topic.
- Use only the preferred language:
  - en -> English
  - hi -> Hindi
  - mr -> Marathi
- Do NOT add extra fields or text.

{format_instructions}`,
	Fields: []string{"subject", "year_old", "preferred_language", "focus_areas"},
}

var topicExpanderTemplate = genpipe.Template{
	ID: "topic-expander",
	Text: `You are an expert tutor.

Task:
Create learning content for a single topic.

Global learner context:
Subject: {subject}
Learner age: {year_old}
Preferred language: {preferred_language}

Topic to expand:
Topic name: {topic_name}

Strict rules:
- Explain the topic clearly and simply, appropriate for the learner's age.
- Explanation must be focused only on this topic.
- Create exactly 2 or 3 easy practice questions suitable for beginners.
- Each practice question must have exactly 4 options and a correct_index.
- Do NOT reference other topics.
- Do NOT add extra fields or commentary.
- Use only the preferred language:
  - en -> English
  - hi -> Hindi
  - mr -> Marathi

{format_instructions}`,
	Fields: []string{"subject", "year_old", "preferred_language", "topic_name"},
}

func plannerFields(req Request) map[string]string {
	focus := "none"
	if len(req.FocusAreas) > 0 {
		focus = strings.Join(req.FocusAreas, ", ")
	}
	return map[string]string{
		"subject":            req.Subject,
		"year_old":           strconv.Itoa(req.YearOld),
		"preferred_language": req.PreferredLanguage,
		"focus_areas":        focus,
	}
}

func expanderFields(req Request, topicName string) map[string]string {
	return map[string]string{
		"subject":            req.Subject,
		"year_old":           strconv.Itoa(req.YearOld),
		"preferred_language": req.PreferredLanguage,
		"topic_name":         topicName,
	}
}
