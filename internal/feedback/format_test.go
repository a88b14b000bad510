package feedback

import (
	"strings"
	"testing"
)

func intp(i int) *int { return &i }

func TestFormatQuestionsEmpty(t *testing.T) {
	if got := FormatQuestions(nil); got != "None" {
		t.Errorf("FormatQuestions(nil) = %q, want None", got)
	}
}

func TestFormatQuestions(t *testing.T) {
	items := []QuestionItem{
		{Question: "1/2 + 1/2?", Options: []string{"0", "1", "2", "3"}, CorrectIndex: 1, SelectedIndex: intp(1)},
		{Question: "1/4 of 8?", Options: []string{"1", "2", "4", "8"}, CorrectIndex: 1, SelectedIndex: intp(3)},
		{Question: "2/3 of 9?", Options: []string{"3", "4", "6", "9"}, CorrectIndex: 2},
	}

	got := FormatQuestions(items)

	for _, want := range []string{
		"- Question: 1/2 + 1/2?",
		"- Question: 1/4 of 8?",
		"(User incorrectly chose: 8)",
		"- Question: 2/3 of 9?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted block missing %q\n%s", want, got)
		}
	}

	// Only the wrong selection gets the parenthetical.
	if n := strings.Count(got, "User incorrectly chose"); n != 1 {
		t.Errorf("wrong-choice lines = %d, want 1", n)
	}
}

func TestFormatQuestionsOutOfRangeSelection(t *testing.T) {
	items := []QuestionItem{
		{Question: "Q", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, SelectedIndex: intp(9)},
	}
	if got := FormatQuestions(items); strings.Contains(got, "incorrectly chose") {
		t.Errorf("out-of-range selection should not render an option: %q", got)
	}
}
