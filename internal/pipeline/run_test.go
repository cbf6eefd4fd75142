package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-screener/internal/classifier"
	"github.com/jonathan/resume-screener/internal/jdstore"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/semantic"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// domainClassifier scores every text with a fixed per-domain probability.
type domainClassifier struct {
	prob float64
}

func (c *domainClassifier) PredictMatchProbability(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}
	return c.prob
}

// domainProvider resolves domains to classifiers with distinct fixed
// probabilities.
type domainProvider struct {
	probs map[string]float64
}

func (p *domainProvider) Classifier(_ context.Context, domain string) (classifier.Classifier, error) {
	prob, ok := p.probs[domain]
	if !ok {
		return nil, &classifier.NotFoundError{Domain: domain}
	}
	return &domainClassifier{prob: prob}, nil
}

type constantEmbedder struct{}

func (constantEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 0}, nil
}

const testResume = `Skills
Go, Python
Experience
5 years at Acme
Projects
Tooling
Education
BSc
Certifications
AWS
`

func newAnalyzer(t *testing.T, probs map[string]float64) *Analyzer {
	t.Helper()

	dir := t.TempDir()
	for domain := range probs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, domain+".txt"), []byte("role description for "+domain), 0o644))
	}
	jds, err := jdstore.Load(dir)
	require.NoError(t, err)

	scorer := scoring.NewScorer(&domainProvider{probs: probs}, semantic.NewEngine(constantEmbedder{}))
	return NewAnalyzer(scorer, jds)
}

func TestAnalyze_ScoresEveryDomain(t *testing.T) {
	analyzer := newAnalyzer(t, map[string]float64{"alpha": 0.2, "beta": 0.9, "gamma": 0.5})

	got, err := analyzer.Analyze(context.Background(), testResume, "alpha")
	require.NoError(t, err)

	// All sections populated and experienced weights apply, so the section
	// score equals the per-domain probability and the fusion collapses to
	// 100 * (0.7*p + 0.3).
	assert.Equal(t, 44.0, got.DomainScores.Get("alpha"))
	assert.Equal(t, 93.0, got.DomainScores.Get("beta"))
	assert.Equal(t, 65.0, got.DomainScores.Get("gamma"))
	assert.Equal(t, got.Result.FinalScore, got.DomainScores.Get("alpha"))
}

func TestAnalyze_RecommendsBetterDomains(t *testing.T) {
	analyzer := newAnalyzer(t, map[string]float64{"alpha": 0.2, "beta": 0.9, "gamma": 0.5})

	got, err := analyzer.Analyze(context.Background(), testResume, "alpha")
	require.NoError(t, err)

	assert.Equal(t, []types.DomainScore{
		{Domain: "beta", Score: 93.0},
		{Domain: "gamma", Score: 65.0},
	}, got.Recommendations)
}

func TestAnalyze_BestFitHasNoRecommendations(t *testing.T) {
	analyzer := newAnalyzer(t, map[string]float64{"alpha": 0.9, "beta": 0.2})

	got, err := analyzer.Analyze(context.Background(), testResume, "alpha")
	require.NoError(t, err)

	assert.Empty(t, got.Recommendations)
}

func TestAnalyze_UnknownDomain(t *testing.T) {
	analyzer := newAnalyzer(t, map[string]float64{"alpha": 0.5})

	_, err := analyzer.Analyze(context.Background(), testResume, "nope")

	assert.Error(t, err)
}

func TestAnalyze_EmptyResumeStillProducesResult(t *testing.T) {
	analyzer := newAnalyzer(t, map[string]float64{"alpha": 0.5, "beta": 0.7})

	got, err := analyzer.Analyze(context.Background(), "", "alpha")
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.Result.FinalScore)
	assert.Equal(t, types.MatchLow, got.Result.MatchLevel)
}
