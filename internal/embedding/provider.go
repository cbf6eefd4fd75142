// Package embedding maps texts to dense vectors via an external embedding
// model, memoizing results by exact text.
package embedding

import (
	"context"
	"fmt"
)

// Provider produces a fixed-length dense vector for a text. Identical input
// text must map to the same vector within one process lifetime.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ProviderError represents a failure of the underlying embedding model.
type ProviderError struct {
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding provider: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding provider: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
