package feedback

import "github.com/shardulfunde/vidya/internal/genpipe"

// QuestionItem is a quiz question together with what the user chose.
// SelectedIndex is nil when no choice was recorded.
type QuestionItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	SelectedIndex *int     `json:"selected_index,omitempty"`
}

// Request describes a quiz attempt to generate feedback for.
type Request struct {
	Topic              string         `json:"topic"`
	Questions          []QuestionItem `json:"questions"`
	CorrectQuestions   []QuestionItem `json:"correct_questions"`
	IncorrectQuestions []QuestionItem `json:"incorrect_questions"`
}

// Validate checks the request before any provider interaction.
func (r *Request) Validate() error {
	if r.Topic == "" {
		return &genpipe.ValidationError{Field: "topic", Reason: "must not be empty"}
	}
	return nil
}

// Feedback is the structured feedback on a quiz attempt.
type Feedback struct {
	Topic              string   `json:"topic"`
	UnderstandingLevel string   `json:"understanding_level"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	Suggestions        []string `json:"suggestions"`
	Feedback           string   `json:"feedback"`
}

// Fallback is the placeholder returned to callers when feedback generation
// fails for any reason. The "Error" understanding level is a sentinel:
// clients must treat it as a failure signal, not a successful analysis.
func Fallback(topic string) Feedback {
	return Feedback{
		Topic:              topic,
		UnderstandingLevel: "Error",
		Strengths:          []string{},
		Weaknesses:         []string{},
		Suggestions:        []string{"Please try again."},
		Feedback:           "Could not generate feedback at this time.",
	}
}
