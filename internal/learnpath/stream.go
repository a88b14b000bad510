package learnpath

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shardulfunde/vidya/internal/genpipe"
)

// topicSnapshot is the best-effort view of a partially generated topic.
// Each snapshot is cumulative: it reflects everything received so far,
// not a diff.
type topicSnapshot struct {
	Explanation string `json:"explanation"`
}

// decodeSnapshot closes the partial JSON buffer and decodes it. Transient
// invalidity mid-stream is expected; the caller skips failed snapshots.
func decodeSnapshot(buf string) (topicSnapshot, bool) {
	s := buf
	if i := strings.Index(s, "{"); i >= 0 {
		s = s[i:]
	} else {
		return topicSnapshot{}, false
	}

	var snap topicSnapshot
	if err := json.Unmarshal([]byte(genpipe.CompletePartialJSON(s)), &snap); err != nil {
		return topicSnapshot{}, false
	}
	return snap, true
}

// StreamTopicDetail expands a topic incrementally. The returned channel
// yields explanation deltas as the model writes, then one question event
// per practice question once the output is complete, then exactly one
// terminal Done or Error event. The channel is closed after the terminal
// event. Cancelling ctx releases the underlying provider stream.
//
// Validation and render failures are returned directly, before any
// provider call.
func (s *Service) StreamTopicDetail(ctx context.Context, req TopicDetailRequest) (<-chan genpipe.StreamEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt, err := topicExpanderTemplate.Render(expanderFields(req.Payload, req.TopicName), TopicSchema)
	if err != nil {
		return nil, err
	}

	out := make(chan genpipe.StreamEvent)

	go func() {
		defer close(out)

		send := func(ev genpipe.StreamEvent) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- ev:
				return true
			}
		}

		deltas, err := s.client.Stream(ctx, prompt)
		if err != nil {
			s.logger.Printf("learnpath: stream topic %q: %v", req.TopicName, err)
			send(genpipe.StreamEvent{Type: genpipe.EventError, Message: "generation failed"})
			return
		}

		var buf strings.Builder
		var cursor genpipe.ExplanationCursor

		for d := range deltas {
			buf.WriteString(d)

			snap, ok := decodeSnapshot(buf.String())
			if !ok {
				continue
			}
			if delta := cursor.Delta(snap.Explanation); delta != "" {
				if !send(genpipe.StreamEvent{Type: genpipe.EventExplanation, Text: delta}) {
					return
				}
			}
		}

		// The stream is exhausted; the buffer must now parse strictly.
		topic, err := genpipe.Extract(buf.String(), TopicSchema, validateTopic)
		if err != nil {
			s.logger.Printf("learnpath: stream topic %q final parse: %v", req.TopicName, err)
			send(genpipe.StreamEvent{Type: genpipe.EventError, Message: "malformed generation result"})
			return
		}

		if delta := cursor.Delta(topic.Explanation); delta != "" {
			if !send(genpipe.StreamEvent{Type: genpipe.EventExplanation, Text: delta}) {
				return
			}
		}

		// Questions only materialize once complete; emit them in final order.
		for i := range topic.PracticeQuestions {
			if !send(genpipe.StreamEvent{Type: genpipe.EventQuestion, Question: topic.PracticeQuestions[i]}) {
				return
			}
		}

		send(genpipe.StreamEvent{Type: genpipe.EventDone})
	}()

	return out, nil
}
