// Package classifier provides per-domain probabilistic classifiers that
// estimate how strongly a text reads like a match for a domain's role
// profile.
package classifier

import (
	"context"
	"errors"
	"fmt"
)

// Classifier predicts the probability, in [0, 1], that a text is a strong
// match for one domain's role profile.
type Classifier interface {
	PredictMatchProbability(text string) float64
}

// Provider resolves the classifier for a domain. A missing domain yields a
// *NotFoundError; callers degrade to probability 0.0 rather than failing.
type Provider interface {
	Classifier(ctx context.Context, domain string) (Classifier, error)
}

// NotFoundError reports that no classifier exists for a domain.
type NotFoundError struct {
	Domain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no classifier for domain %q", e.Domain)
}

// IsNotFound reports whether err indicates a missing classifier.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
