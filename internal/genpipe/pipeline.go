package genpipe

import (
	"context"
	"sync"

	"github.com/shardulfunde/vidya/internal/llm"
)

// Request bundles everything needed for one structured generation.
type Request struct {
	Template Template
	Fields   map[string]string
	Schema   *Schema
}

// Result holds the outcome of one generation in a batch.
type Result[T any] struct {
	Value T
	Err   error
}

// Generate renders the prompt, invokes the text generation client and
// extracts a value of type T from the response. Failures are terminal:
// there are no retries at this layer.
func Generate[T any](ctx context.Context, c llm.Client, req Request, validate func(*T) error) (T, error) {
	var zero T

	prompt, err := req.Template.Render(req.Fields, req.Schema)
	if err != nil {
		return zero, err
	}

	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return zero, err
	}

	return Extract(text, req.Schema, validate)
}

// GenerateMany runs the given requests concurrently and returns one Result
// per request, in submission order regardless of completion order. Items
// are independent: one failure neither cancels nor blocks the others. No
// concurrency cap is imposed here; the provider's own limits govern.
func GenerateMany[T any](ctx context.Context, c llm.Client, reqs []Request, validate func(*T) error) []Result[T] {
	results := make([]Result[T], len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req Request) {
			defer wg.Done()
			v, err := Generate(ctx, c, req, validate)
			results[i] = Result[T]{Value: v, Err: err}
		}(i, req)
	}
	wg.Wait()

	return results
}
