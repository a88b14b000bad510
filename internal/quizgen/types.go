package quizgen

import (
	"fmt"

	"github.com/shardulfunde/vidya/internal/genpipe"
)

// Languages supported for generated learning material.
var supportedLanguages = map[string]bool{
	"en": true,
	"hi": true,
	"mr": true,
}

// ValidLanguage reports whether code is one of the supported language codes.
func ValidLanguage(code string) bool {
	return supportedLanguages[code]
}

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

const (
	defaultNumQuestions = 5
	maxNumQuestions     = 20
)

// Request describes a multiple-choice test to generate.
type Request struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
	Language     string `json:"language"`
}

// Validate checks the request and applies the question-count default.
// It must be called before any provider interaction.
func (r *Request) Validate() error {
	if r.Topic == "" {
		return &genpipe.ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if !validDifficulties[r.Difficulty] {
		return &genpipe.ValidationError{Field: "difficulty", Reason: "must be one of easy, medium, hard"}
	}
	if r.NumQuestions == 0 {
		r.NumQuestions = defaultNumQuestions
	}
	if r.NumQuestions < 1 || r.NumQuestions > maxNumQuestions {
		return &genpipe.ValidationError{Field: "num_questions", Reason: fmt.Sprintf("must be between 1 and %d", maxNumQuestions)}
	}
	if !ValidLanguage(r.Language) {
		return &genpipe.ValidationError{Field: "language", Reason: "must be one of en, hi, mr"}
	}
	return nil
}

// Question is a single multiple-choice question with exactly four options.
type Question struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Validate checks the option count and that the correct index addresses
// one of the options.
func (q *Question) Validate() error {
	if len(q.Options) != 4 {
		return fmt.Errorf("question %q: got %d options, want 4", q.Question, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q: correct_index %d out of range", q.Question, q.CorrectIndex)
	}
	return nil
}

// Test is a generated multiple-choice test.
type Test struct {
	Topic      string     `json:"topic"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
}

// QuestionResult is one question's outcome in a completed test.
// SelectedOptionIndex is -1 when the question was skipped.
type QuestionResult struct {
	Question            string   `json:"question"`
	SelectedOptionIndex int      `json:"selected_option_index"`
	CorrectOptionIndex  int      `json:"correct_option_index"`
	Options             []string `json:"options"`
}

// AnalysisRequest asks for an analysis of a completed test.
type AnalysisRequest struct {
	Topic    string           `json:"topic"`
	Language string           `json:"language"`
	Results  []QuestionResult `json:"results"`
}

// Validate checks the request. Each result's correct index must address
// one of its options since the summary renders the option text.
func (r *AnalysisRequest) Validate() error {
	if r.Topic == "" {
		return &genpipe.ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	if !ValidLanguage(r.Language) {
		return &genpipe.ValidationError{Field: "language", Reason: "must be one of en, hi, mr"}
	}
	for i, res := range r.Results {
		if res.CorrectOptionIndex < 0 || res.CorrectOptionIndex >= len(res.Options) {
			return &genpipe.ValidationError{
				Field:  fmt.Sprintf("results[%d].correct_option_index", i),
				Reason: "out of range of options",
			}
		}
	}
	return nil
}

// Analysis is the structured outcome of a test analysis.
type Analysis struct {
	ScoreCommentary string   `json:"score_commentary"`
	WeakConcepts    []string `json:"weak_concepts"`
	Strengths       []string `json:"strengths"`
	StudyPlan       []string `json:"study_plan"`
}
