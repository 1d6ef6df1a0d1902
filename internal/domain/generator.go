package domain

import "context"

// TextGenerator defines the outbound interface to the generative-language
// service. Implementations are expected to handle model fallback internally
// and to return the raw response text without judging its shape.
type TextGenerator interface {
	// Generate sends the prompt and returns the raw model output. It fails
	// only on transport/service errors, never on content shape.
	Generate(ctx context.Context, prompt string) (string, error)
}
