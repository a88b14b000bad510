package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockClient.
type MockResponse struct {
	Text string
	Err  error
}

// MockStream is a canned stream for the MockClient.
type MockStream struct {
	Deltas []string
	Err    error // returned from Stream before any delta is sent
}

// MockClient is a deterministic Client for testing.
// It returns canned responses in FIFO order and records all prompts.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	streams   []MockStream
	Prompts   []string
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// AddStream appends a canned stream to the queue.
func (m *MockClient) AddStream(s MockStream) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams = append(m.streams, s)
}

// Complete returns the next canned response or a GenerationError if the
// queue is empty.
func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if len(m.responses) == 0 {
		return "", &GenerationError{Provider: "mock", Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

// Stream returns the next canned stream's deltas through a channel.
func (m *MockClient) Stream(ctx context.Context, prompt string) (<-chan string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)

	if len(m.streams) == 0 {
		m.mu.Unlock()
		return nil, &GenerationError{Provider: "mock", Err: nil}
	}

	s := m.streams[0]
	m.streams = m.streams[1:]
	m.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	ch := make(chan string, len(s.Deltas))
	go func() {
		defer close(ch)
		for _, d := range s.Deltas {
			select {
			case <-ctx.Done():
				return
			case ch <- d:
			}
		}
	}()
	return ch, nil
}

// CallCount returns the number of Complete and Stream calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
