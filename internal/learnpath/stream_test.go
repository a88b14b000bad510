package learnpath

import (
	"context"
	"errors"
	"testing"

	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/llm"
	"github.com/shardulfunde/vidya/internal/quizgen"
)

func collectEvents(t *testing.T, ch <-chan genpipe.StreamEvent) []genpipe.StreamEvent {
	t.Helper()
	var events []genpipe.StreamEvent
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func TestStreamTopicDetail(t *testing.T) {
	// Deltas build one JSON document; the explanation arrives in three
	// pieces so the cursor has re-emission to avoid.
	mock := llm.NewMockClient()
	mock.AddStream(llm.MockStream{Deltas: []string{
		`{"topic_name":"Fractions","explanation":"Hel`,
		`lo `,
		`world",`,
		`"practice_questions":[{"question":"Q1","options":["a","b","c","d"],"correct_index":1},`,
		`{"question":"Q2","options":["a","b","c","d"],"correct_index":0}]}`,
	}})
	svc := NewService(mock, testLogger())

	ch, err := svc.StreamTopicDetail(context.Background(), TopicDetailRequest{
		Payload:   validRequest(),
		TopicName: "Fractions",
	})
	if err != nil {
		t.Fatalf("StreamTopicDetail() error = %v", err)
	}

	events := collectEvents(t, ch)
	if len(events) == 0 {
		t.Fatal("no events emitted")
	}

	// Terminal event is Done, exactly once, strictly last.
	last := events[len(events)-1]
	if last.Type != genpipe.EventDone {
		t.Fatalf("last event = %v, want done", last.Type)
	}
	for _, ev := range events[:len(events)-1] {
		if ev.Type == genpipe.EventDone || ev.Type == genpipe.EventError {
			t.Fatalf("terminal event %v emitted before the end", ev.Type)
		}
	}

	// Explanation deltas carry only unseen suffixes.
	var deltas []string
	var questions []genpipe.StreamEvent
	for _, ev := range events {
		switch ev.Type {
		case genpipe.EventExplanation:
			deltas = append(deltas, ev.Text)
		case genpipe.EventQuestion:
			questions = append(questions, ev)
		}
	}

	want := []string{"Hel", "lo ", "world"}
	if len(deltas) != len(want) {
		t.Fatalf("explanation deltas = %q, want %q", deltas, want)
	}
	var full string
	for i, d := range deltas {
		if d != want[i] {
			t.Errorf("delta %d = %q, want %q", i, d, want[i])
		}
		full += d
	}
	if full != "Hello world" {
		t.Errorf("concatenated deltas = %q, want %q", full, "Hello world")
	}

	// Questions are emitted after the loop, in final list order.
	if len(questions) != 2 {
		t.Fatalf("question events = %d, want 2", len(questions))
	}
	for i, wantQ := range []string{"Q1", "Q2"} {
		q, ok := questions[i].Question.(quizgen.Question)
		if !ok {
			t.Fatalf("question event %d payload = %T, want quizgen.Question", i, questions[i].Question)
		}
		if q.Question != wantQ {
			t.Errorf("question %d = %q, want %q", i, q.Question, wantQ)
		}
	}
}

func TestStreamTopicDetailMalformedFinal(t *testing.T) {
	mock := llm.NewMockClient()
	mock.AddStream(llm.MockStream{Deltas: []string{"I cannot help with that."}})
	svc := NewService(mock, testLogger())

	ch, err := svc.StreamTopicDetail(context.Background(), TopicDetailRequest{
		Payload:   validRequest(),
		TopicName: "Fractions",
	})
	if err != nil {
		t.Fatalf("StreamTopicDetail() error = %v", err)
	}

	events := collectEvents(t, ch)
	if len(events) != 1 {
		t.Fatalf("events = %d, want exactly the error event", len(events))
	}
	if events[0].Type != genpipe.EventError {
		t.Errorf("event = %v, want error", events[0].Type)
	}
}

func TestStreamTopicDetailProviderFailure(t *testing.T) {
	mock := llm.NewMockClient()
	mock.AddStream(llm.MockStream{Err: &llm.GenerationError{Provider: "mock", Err: errors.New("down")}})
	svc := NewService(mock, testLogger())

	ch, err := svc.StreamTopicDetail(context.Background(), TopicDetailRequest{
		Payload:   validRequest(),
		TopicName: "Fractions",
	})
	if err != nil {
		t.Fatalf("StreamTopicDetail() error = %v", err)
	}

	events := collectEvents(t, ch)
	if len(events) != 1 || events[0].Type != genpipe.EventError {
		t.Fatalf("events = %+v, want a single error event", events)
	}
}

func TestStreamTopicDetailValidation(t *testing.T) {
	mock := llm.NewMockClient()
	svc := NewService(mock, testLogger())

	req := TopicDetailRequest{Payload: validRequest(), TopicName: ""}
	_, err := svc.StreamTopicDetail(context.Background(), req)
	var ve *genpipe.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("StreamTopicDetail() error = %v, want ValidationError", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for an invalid request, want 0", mock.CallCount())
	}
}
