package feedback

import (
	"fmt"
	"strings"
)

// FormatQuestions renders quiz questions as the text block consumed by the
// feedback prompt. When the user's recorded choice differs from the correct
// one, the text of the wrong option is included so the model can explain
// why it was wrong. An empty list renders as the literal "None".
func FormatQuestions(items []QuestionItem) string {
	if len(items) == 0 {
		return "None"
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- Question: %s\n", item.Question)
		if item.SelectedIndex == nil {
			continue
		}
		sel := *item.SelectedIndex
		if sel != item.CorrectIndex && sel >= 0 && sel < len(item.Options) {
			fmt.Fprintf(&b, "  (User incorrectly chose: %s)\n", item.Options[sel])
		}
	}
	return b.String()
}
