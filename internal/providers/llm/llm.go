package llm

import "context"

// Options are the sampling parameters sent with every generation.
type Options struct {
	MaxTokens   int
	Temperature float32
}

type Provider interface {
	// Generate returns the full completion for prompt.
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
	Close() error
}
