package modelstore

import (
	"context"
	"errors"
	"sync"

	"github.com/jonathan/resume-screener/internal/classifier"
)

// Provider adapts a Store to the classifier.Provider contract, memoizing
// loaded models for the life of the process. Safe for concurrent use.
type Provider struct {
	store Store

	mu     sync.Mutex
	loaded map[string]*classifier.Model
}

var _ classifier.Provider = (*Provider)(nil)

// NewProvider creates a provider backed by the given store.
func NewProvider(store Store) *Provider {
	return &Provider{
		store:  store,
		loaded: make(map[string]*classifier.Model),
	}
}

// Classifier returns the classifier for a domain, loading it on first use.
// A missing artifact surfaces as *classifier.NotFoundError.
func (p *Provider) Classifier(ctx context.Context, domain string) (classifier.Classifier, error) {
	p.mu.Lock()
	if model, ok := p.loaded[domain]; ok {
		p.mu.Unlock()
		return model, nil
	}
	p.mu.Unlock()

	model, err := p.store.Load(ctx, domain)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, &classifier.NotFoundError{Domain: domain}
		}
		return nil, err
	}

	p.mu.Lock()
	p.loaded[domain] = model
	p.mu.Unlock()
	return model, nil
}
