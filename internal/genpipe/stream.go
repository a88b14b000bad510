package genpipe

// EventType identifies a stream event kind.
type EventType string

const (
	// EventExplanation carries a new suffix of the explanation text.
	EventExplanation EventType = "explanation"
	// EventQuestion carries one completed practice question.
	EventQuestion EventType = "question"
	// EventDone terminates a successfully completed stream.
	EventDone EventType = "done"
	// EventError terminates a failed stream.
	EventError EventType = "error"
)

// StreamEvent is one unit of an incremental pipeline's output sequence.
// Exactly one terminal event (Done or Error) ends every stream, and it is
// strictly the last event emitted.
type StreamEvent struct {
	Type     EventType
	Text     string // explanation delta, set for EventExplanation
	Question any    // question payload, set for EventQuestion
	Message  string // failure description, set for EventError
}

// ExplanationCursor tracks how much of a cumulative explanation snapshot
// has already been emitted. The underlying snapshots are cumulative, not
// diffs, so emitting them verbatim would re-send already-delivered text;
// Delta returns only the unseen suffix.
type ExplanationCursor struct {
	emitted int
}

// Delta advances the cursor and returns the suffix of full beyond what was
// previously emitted, or "" when nothing new has arrived.
func (c *ExplanationCursor) Delta(full string) string {
	if len(full) <= c.emitted {
		return ""
	}
	d := full[c.emitted:]
	c.emitted = len(full)
	return d
}
