package llm

import (
	"context"
	"fmt"
)

// Client defines the interface for text generation providers.
type Client interface {
	// Complete sends a prompt and returns the full text response.
	Complete(ctx context.Context, prompt string) (string, error)

	// Stream sends a prompt and returns text deltas through the channel.
	// Deltas are raw text fragments in generation order; concatenating them
	// yields the full response. The channel is closed when the model
	// finishes or the stream breaks.
	Stream(ctx context.Context, prompt string) (<-chan string, error)
}

// GenerationError indicates the provider was unreachable or returned an error.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
