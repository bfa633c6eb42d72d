package engine

import "context"

// Engine abstracts the model runtime used by the service façade.
// Concrete implementations are one per model family.
type Engine interface {
	// Generate produces a completion for the given prompt. It blocks until
	// the runtime finishes or ctx is canceled.
	Generate(ctx context.Context, prompt string, p GenParams) (string, error)
	// Close releases the runtime session backing this engine.
	Close() error
}

// GenParams captures per-call generation parameters.
type GenParams struct {
	MaxTokens   int
	Temperature float32
	TopK        int
}
