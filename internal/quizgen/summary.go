package quizgen

import (
	"fmt"
	"strings"
)

// formatResults renders completed-test records as the text table consumed
// by the analysis prompt. Indices are mapped back to option text so the
// model sees answers, not numbers. An empty result set renders as "None".
func formatResults(results []QuestionResult) string {
	if len(results) == 0 {
		return "None"
	}

	var b strings.Builder
	for i, item := range results {
		userAnswer := "No Answer / Skipped"
		if item.SelectedOptionIndex >= 0 && item.SelectedOptionIndex < len(item.Options) {
			userAnswer = item.Options[item.SelectedOptionIndex]
		}

		correctAnswer := item.Options[item.CorrectOptionIndex]

		status := "INCORRECT"
		if item.SelectedOptionIndex == item.CorrectOptionIndex {
			status = "CORRECT"
		}

		fmt.Fprintf(&b, "Question %d: %s\n", i+1, item.Question)
		fmt.Fprintf(&b, "- User Answer: %s\n", userAnswer)
		fmt.Fprintf(&b, "- Correct Answer: %s\n", correctAnswer)
		fmt.Fprintf(&b, "- Result: %s\n", status)
		b.WriteString("----------------------------------\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
