package learnpath

import (
	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/quizgen"
)

// Request describes the learner a path is planned for.
type Request struct {
	Subject           string   `json:"subject"`
	YearOld           int      `json:"year_old"`
	PreferredLanguage string   `json:"preferred_language"`
	FocusAreas        []string `json:"focus_areas"`
}

// Validate checks the request before any provider interaction.
func (r *Request) Validate() error {
	if r.Subject == "" {
		return &genpipe.ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if r.YearOld <= 0 || r.YearOld > 100 {
		return &genpipe.ValidationError{Field: "year_old", Reason: "must be between 1 and 100"}
	}
	if !quizgen.ValidLanguage(r.PreferredLanguage) {
		return &genpipe.ValidationError{Field: "preferred_language", Reason: "must be one of en, hi, mr"}
	}
	return nil
}

// TopicList is the planner's output: topic names ordered basic to advanced.
type TopicList struct {
	Topics []string `json:"topics"`
}

// Topic is one expanded learning-path entry.
type Topic struct {
	TopicName         string            `json:"topic_name"`
	Explanation       string            `json:"explanation"`
	PracticeQuestions []quizgen.Question `json:"practice_questions"`
}

// LearningPath is the assembled result of planning plus per-topic
// expansion. Topics keep the planner's order. FailedTopics names planned
// topics whose expansion failed, so callers see partial success explicitly.
type LearningPath struct {
	Topics              []Topic  `json:"topics"`
	AdditionalResources []string `json:"additional_resources,omitempty"`
	FailedTopics        []string `json:"failed_topics,omitempty"`
}

// TopicDetailRequest asks for the expansion of a single named topic.
type TopicDetailRequest struct {
	Payload   Request `json:"payload"`
	TopicName string  `json:"topic_name"`
}

// Validate checks the request before any provider interaction.
func (r *TopicDetailRequest) Validate() error {
	if err := r.Payload.Validate(); err != nil {
		return err
	}
	if r.TopicName == "" {
		return &genpipe.ValidationError{Field: "topic_name", Reason: "must not be empty"}
	}
	return nil
}
