// Package semantic measures how close two texts are in meaning by comparing
// their embedding vectors.
package semantic

import (
	"context"
	"math"

	"github.com/jonathan/resume-screener/internal/embedding"
)

// Engine computes cosine similarity between embedding vectors produced by an
// injected provider.
type Engine struct {
	provider embedding.Provider
}

// NewEngine creates an engine backed by the given embedding provider.
func NewEngine(provider embedding.Provider) *Engine {
	return &Engine{provider: provider}
}

// Similarity returns the cosine similarity of the two texts in [0, 1].
// Empty input on either side yields 0.0 without touching the provider, and
// any provider failure degrades to 0.0 rather than propagating.
func (e *Engine) Similarity(ctx context.Context, textA, textB string) float64 {
	if textA == "" || textB == "" {
		return 0.0
	}

	vecA, err := e.provider.Embed(ctx, textA)
	if err != nil {
		return 0.0
	}
	vecB, err := e.provider.Embed(ctx, textB)
	if err != nil {
		return 0.0
	}

	return cosine(vecA, vecB)
}

// cosine computes cosine similarity clamped to [0, 1]. Negative similarity is
// floored at 0 since it carries no meaning for resume matching.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0.0
	}
	if sim > 1 {
		return 1.0
	}
	return sim
}
