// Package pipeline provides the high-level orchestration for one resume
// analysis: composite scoring of the selected domain, scoring of every other
// known domain, and better-fit recommendations.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/jdstore"
	"github.com/jonathan/resume-screener/internal/recommend"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// AnalysisResult is the outcome of one full analysis run.
type AnalysisResult struct {
	RunID           uuid.UUID               `json:"run_id"`
	Result          *types.CompositeResult  `json:"result"`
	DomainScores    *types.DomainScoreTable `json:"domain_scores"`
	Recommendations []types.DomainScore     `json:"recommendations"`
}

// Analyzer runs the composite scorer across all known domains.
type Analyzer struct {
	scorer *scoring.Scorer
	jds    *jdstore.Store
}

// NewAnalyzer creates an analyzer over the given scorer and job descriptions.
func NewAnalyzer(scorer *scoring.Scorer, jds *jdstore.Store) *Analyzer {
	return &Analyzer{scorer: scorer, jds: jds}
}

// Analyze scores resumeText against the selected domain, then against every
// other known domain (sequentially, in the store's fixed order) to surface
// better-fitting roles. The selected domain must exist in the store; failures
// inside a single domain's scoring degrade to zero scores rather than
// aborting the run.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, domain string) (*AnalysisResult, error) {
	jdText, ok := a.jds.Get(domain)
	if !ok {
		return nil, fmt.Errorf("unknown domain %q", domain)
	}

	result := a.scorer.Score(ctx, resumeText, jdText, domain)

	scores := &types.DomainScoreTable{}
	for _, d := range a.jds.Domains() {
		if d == domain {
			scores.Add(d, result.FinalScore)
			continue
		}
		otherJD, ok := a.jds.Get(d)
		if !ok {
			continue
		}
		scores.Add(d, a.scorer.Score(ctx, resumeText, otherJD, d).FinalScore)
	}

	return &AnalysisResult{
		RunID:           uuid.New(),
		Result:          result,
		DomainScores:    scores,
		Recommendations: recommend.BetterDomains(scores, domain),
	}, nil
}
