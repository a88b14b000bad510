package learnpath

import (
	"context"
	"log"

	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/llm"
)

// Service plans learning paths and expands their topics.
type Service struct {
	client llm.Client
	logger *log.Logger
}

// NewService creates a new learning path service.
func NewService(client llm.Client, logger *log.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// validateTopic checks every practice question of an expanded topic.
// The question count itself is bounded by the schema.
func validateTopic(t *Topic) error {
	for i := range t.PracticeQuestions {
		if err := t.PracticeQuestions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PlanTopics generates the ordered topic list for a learning path.
func (s *Service) PlanTopics(ctx context.Context, req Request) (TopicList, error) {
	if err := req.Validate(); err != nil {
		return TopicList{}, err
	}

	return genpipe.Generate[TopicList](ctx, s.client, genpipe.Request{
		Template: topicPlannerTemplate,
		Fields:   plannerFields(req),
		Schema:   TopicListSchema,
	}, nil)
}

// ExpandTopic generates the learning content for a single topic.
func (s *Service) ExpandTopic(ctx context.Context, req TopicDetailRequest) (Topic, error) {
	if err := req.Validate(); err != nil {
		return Topic{}, err
	}

	return genpipe.Generate(ctx, s.client, genpipe.Request{
		Template: topicExpanderTemplate,
		Fields:   expanderFields(req.Payload, req.TopicName),
		Schema:   TopicSchema,
	}, validateTopic)
}

// BuildLearningPath plans the topic list, then expands every topic
// concurrently. Expansions are independent: results are collected in the
// planner's order and a failed expansion is reported in FailedTopics
// rather than failing the whole path.
func (s *Service) BuildLearningPath(ctx context.Context, req Request) (LearningPath, error) {
	plan, err := s.PlanTopics(ctx, req)
	if err != nil {
		return LearningPath{}, err
	}

	reqs := make([]genpipe.Request, len(plan.Topics))
	for i, name := range plan.Topics {
		reqs[i] = genpipe.Request{
			Template: topicExpanderTemplate,
			Fields:   expanderFields(req, name),
			Schema:   TopicSchema,
		}
	}

	results := genpipe.GenerateMany(ctx, s.client, reqs, validateTopic)

	var path LearningPath
	for i, res := range results {
		if res.Err != nil {
			s.logger.Printf("learnpath: expand topic %q: %v", plan.Topics[i], res.Err)
			path.FailedTopics = append(path.FailedTopics, plan.Topics[i])
			continue
		}
		path.Topics = append(path.Topics, res.Value)
	}
	return path, nil
}
