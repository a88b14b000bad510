package feedback

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/llm"
)

func testLogger() *log.Logger {
	return log.New(os.Stderr, "test ", log.LstdFlags)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Text: `{
		"topic": "Fractions",
		"understanding_level": "Good",
		"strengths": ["addition"],
		"weaknesses": ["division"],
		"suggestions": ["Practice division."],
		"feedback": "Solid attempt overall."
	}`})
	svc := NewService(mock, testLogger())

	sel := 3
	got, err := svc.Generate(context.Background(), Request{
		Topic: "Fractions",
		IncorrectQuestions: []QuestionItem{
			{Question: "1/4 of 8?", Options: []string{"1", "2", "4", "8"}, CorrectIndex: 1, SelectedIndex: &sel},
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got.UnderstandingLevel != "Good" {
		t.Errorf("UnderstandingLevel = %q, want Good", got.UnderstandingLevel)
	}

	prompt := mock.Prompts[0]
	for _, phrase := range []string{"Fractions", "1/4 of 8?", "User incorrectly chose: 8"} {
		if !strings.Contains(prompt, phrase) {
			t.Errorf("prompt should contain %q", phrase)
		}
	}
}

func TestGenerateRejectsBeforeProviderCall(t *testing.T) {
	mock := llm.NewMockClient()
	svc := NewService(mock, testLogger())

	_, err := svc.Generate(context.Background(), Request{})
	var ve *genpipe.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Generate() error = %v, want ValidationError", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for an invalid request, want 0", mock.CallCount())
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	mock := llm.NewMockClient(llm.MockResponse{Err: &llm.GenerationError{Provider: "mock", Err: errors.New("down")}})
	svc := NewService(mock, testLogger())

	_, err := svc.Generate(context.Background(), Request{Topic: "T"})
	var ge *llm.GenerationError
	if !errors.As(err, &ge) {
		t.Fatalf("Generate() error = %v, want GenerationError", err)
	}
}

func TestFallbackShape(t *testing.T) {
	fb := Fallback("Fractions")

	if fb.Topic != "Fractions" {
		t.Errorf("Topic = %q", fb.Topic)
	}
	if fb.UnderstandingLevel != "Error" {
		t.Errorf("UnderstandingLevel = %q, want Error", fb.UnderstandingLevel)
	}
	if fb.Strengths == nil || len(fb.Strengths) != 0 {
		t.Errorf("Strengths = %v, want empty non-nil slice", fb.Strengths)
	}
	if fb.Weaknesses == nil || len(fb.Weaknesses) != 0 {
		t.Errorf("Weaknesses = %v, want empty non-nil slice", fb.Weaknesses)
	}
	if len(fb.Suggestions) != 1 || fb.Suggestions[0] != "Please try again." {
		t.Errorf("Suggestions = %v", fb.Suggestions)
	}
	if fb.Feedback != "Could not generate feedback at this time." {
		t.Errorf("Feedback = %q", fb.Feedback)
	}
}
