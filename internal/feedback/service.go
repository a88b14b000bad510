package feedback

import (
	"context"
	"log"

	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/llm"
)

// Service generates feedback on quiz attempts.
type Service struct {
	client llm.Client
	logger *log.Logger
}

// NewService creates a new feedback service.
func NewService(client llm.Client, logger *log.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Generate produces structured feedback for a quiz attempt. Failures are
// returned as errors; presenting a fallback to the caller is the
// transport layer's decision.
func (s *Service) Generate(ctx context.Context, req Request) (Feedback, error) {
	if err := req.Validate(); err != nil {
		return Feedback{}, err
	}

	return genpipe.Generate[Feedback](ctx, s.client, genpipe.Request{
		Template: feedbackTemplate,
		Fields: map[string]string{
			"topic":               req.Topic,
			"questions":           FormatQuestions(req.Questions),
			"correct_questions":   FormatQuestions(req.CorrectQuestions),
			"incorrect_questions": FormatQuestions(req.IncorrectQuestions),
		},
		Schema: FeedbackSchema,
	}, nil)
}
