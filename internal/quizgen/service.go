package quizgen

import (
	"context"
	"log"
	"strconv"

	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/llm"
)

// Service generates and analyzes multiple-choice tests.
type Service struct {
	client llm.Client
	logger *log.Logger
}

// NewService creates a new test generation service.
func NewService(client llm.Client, logger *log.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// validateTest checks every generated question.
func validateTest(t *Test) error {
	for i := range t.Questions {
		if err := t.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Generate produces a multiple-choice test for the given request.
func (s *Service) Generate(ctx context.Context, req Request) (Test, error) {
	if err := req.Validate(); err != nil {
		return Test{}, err
	}

	return genpipe.Generate(ctx, s.client, genpipe.Request{
		Template: testTemplate,
		Fields: map[string]string{
			"topic":         req.Topic,
			"difficulty":    req.Difficulty,
			"num_questions": strconv.Itoa(req.NumQuestions),
			"language":      req.Language,
		},
		Schema: TestSchema,
	}, validateTest)
}

// Analyze produces a structured analysis of a completed test.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (Analysis, error) {
	if err := req.Validate(); err != nil {
		return Analysis{}, err
	}

	return genpipe.Generate[Analysis](ctx, s.client, genpipe.Request{
		Template: analysisTemplate,
		Fields: map[string]string{
			"topic":             req.Topic,
			"language":          req.Language,
			"test_data_summary": formatResults(req.Results),
		},
		Schema: AnalysisSchema,
	}, nil)
}
