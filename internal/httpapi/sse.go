package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shardulfunde/vidya/internal/genpipe"
)

// sseWriter frames payloads as text/event-stream data lines and flushes
// after every event so partial results reach the client promptly.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newSSEWriter(w http.ResponseWriter) (*sseWriter, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	return &sseWriter{w: w, flusher: flusher}, true
}

func (s *sseWriter) send(payload string) {
	fmt.Fprintf(s.w, "data: %s\n\n", payload)
	s.flusher.Flush()
}

// sendEvent frames a typed stream event as a JSON payload.
func (s *sseWriter) sendEvent(ev genpipe.StreamEvent) {
	var payload any
	switch ev.Type {
	case genpipe.EventExplanation:
		payload = map[string]any{"type": "explanation", "data": ev.Text}
	case genpipe.EventQuestion:
		payload = map[string]any{"type": "question", "data": ev.Question}
	case genpipe.EventDone:
		payload = map[string]any{"type": "done"}
	case genpipe.EventError:
		payload = map[string]any{"type": "error", "message": ev.Message}
	default:
		return
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	s.send(string(b))
}
