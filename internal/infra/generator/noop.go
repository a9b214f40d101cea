package generator

import (
	"context"
	"fmt"
)

// NoOp is a generator that deterministically echoes the request instead of
// calling an external API. This is useful for testing and local development
// when no API key is configured.
type NoOp struct{}

// NewNoOp creates a new NoOp generator.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Generate returns a fixed sentence built from the prompt so that downstream
// scoring still produces stable, non-trivial output.
func (n *NoOp) Generate(_ context.Context, _, prompt string) (string, error) {
	return fmt.Sprintf("Placeholder copy generated locally. Requested: %s", prompt), nil
}
