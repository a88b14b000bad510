package tts

import "context"

// Client defines the interface for speech synthesis providers.
type Client interface {
	// Synthesize converts text to speech and returns a complete WAV
	// payload, or an error when no audio could be produced. Long text is
	// chunked by the implementation and stitched back into one container.
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
