// Package modelstore persists serialized per-domain classifier artifacts.
package modelstore

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-screener/internal/classifier"
)

// Store loads and saves classifier models by domain name.
type Store interface {
	// Load returns the classifier for a domain, or a *NotFoundError when no
	// artifact exists for it.
	Load(ctx context.Context, domain string) (*classifier.Model, error)
	// Save persists the classifier artifact for its domain, replacing any
	// previous artifact.
	Save(ctx context.Context, model *classifier.Model) error
	// Domains lists the domains that have a stored artifact.
	Domains(ctx context.Context) ([]string, error)
}

// NotFoundError reports that no artifact exists for a domain.
type NotFoundError struct {
	Domain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no model artifact for domain %q", e.Domain)
}

// ArtifactError reports a corrupt or schema-invalid stored artifact.
type ArtifactError struct {
	Domain  string
	Message string
	Cause   error
}

func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model artifact for %q: %s: %v", e.Domain, e.Message, e.Cause)
	}
	return fmt.Sprintf("model artifact for %q: %s", e.Domain, e.Message)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
