// Package generator provides adapters for external text-generation APIs.
// It includes a Mistral adapter (chat-completion compatible) and a Claude
// (Anthropic) adapter, with comprehensive observability through structured
// logging and Prometheus metrics.
//
// Calls are single-shot: there is no retry, caching, or request deduplication
// in this package. A failed call surfaces exactly one GenerationError carrying
// whatever the upstream returned.
package generator

import (
	"context"
	"fmt"
)

// Generator is the port the generation pipeline calls with a rendered prompt.
// Implementations must return the generated text verbatim.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// GenerationError represents a failed upstream generation call.
// Status is the upstream HTTP status (0 for transport-level failures) and
// Message carries the upstream error payload verbatim for diagnostics.
type GenerationError struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

// Error returns the error message, implementing the error interface.
func (e *GenerationError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s api error: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
