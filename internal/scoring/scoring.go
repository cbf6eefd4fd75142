// Package scoring fuses classifier probability, semantic similarity and a
// section-weighted score into one composite match score for a resume against
// a domain.
package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/classifier"
	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/semantic"
	"github.com/jonathan/resume-screener/internal/skillgap"
	"github.com/jonathan/resume-screener/internal/types"
)

// Fusion weights for the composite formula.
const (
	classifierWeight = 0.4
	semanticWeight   = 0.3
	sectionWeight    = 0.3
)

// fresherWeights apply when the resume reads as a fresher's. Experience gets
// no weight; the remaining weights sum to 1.0.
var fresherWeights = map[string]float64{
	types.SectionSkills:         0.45,
	types.SectionProjects:       0.30,
	types.SectionEducation:      0.15,
	types.SectionCertifications: 0.10,
	types.SectionExperience:     0.00,
}

// experiencedWeights apply to candidates with quantifiable experience.
var experiencedWeights = map[string]float64{
	types.SectionSkills:         0.40,
	types.SectionExperience:     0.25,
	types.SectionProjects:       0.20,
	types.SectionEducation:      0.10,
	types.SectionCertifications: 0.05,
}

// Scorer orchestrates the section extractor, domain classifiers and the
// semantic similarity engine.
type Scorer struct {
	classifiers classifier.Provider
	similarity  *semantic.Engine
}

// NewScorer creates a composite scorer.
func NewScorer(classifiers classifier.Provider, similarity *semantic.Engine) *Scorer {
	return &Scorer{classifiers: classifiers, similarity: similarity}
}

// Score computes the composite result for one resume against one domain.
// Internal failures degrade to neutral values: a missing classifier scores
// probability 0.0 everywhere and an embedding failure scores similarity 0.0,
// so a result is always produced.
func (s *Scorer) Score(ctx context.Context, resumeText, jdText, domain string) *types.CompositeResult {
	clf := s.domainClassifier(ctx, domain)

	pML := 0.0
	if clf != nil {
		pML = clf.PredictMatchProbability(resumeText)
	}

	pSem := s.similarity.Similarity(ctx, resumeText, jdText)

	resumeSections := sections.Extract(resumeText)
	sectionScore, sectionScores := sectionWeightedScore(clf, &resumeSections)

	finalScore := round2(100 * (classifierWeight*pML + semanticWeight*pSem + sectionWeight*(sectionScore/100)))

	return &types.CompositeResult{
		Domain:        domain,
		FinalScore:    finalScore,
		MatchLevel:    MatchLevelFor(finalScore),
		MissingSkills: skillgap.MissingSkills(resumeText, jdText),
		Sections:      resumeSections,
		IsFresher:     resumeSections.IsFresher,
		Breakdown: &types.ScoreBreakdown{
			SectionScores: sectionScores,
			FinalScore:    sectionScore,
		},
	}
}

// domainClassifier resolves the domain's classifier, treating every failure
// as "no classifier" per the degradation contract.
func (s *Scorer) domainClassifier(ctx context.Context, domain string) classifier.Classifier {
	clf, err := s.classifiers.Classifier(ctx, domain)
	if err != nil {
		return nil
	}
	return clf
}

// sectionWeightedScore scores each weighted section with the domain
// classifier and returns the weight-normalized score on a 0-100 scale plus
// the per-section probabilities rounded to two decimals.
func sectionWeightedScore(clf classifier.Classifier, resumeSections *types.ResumeSections) (float64, map[string]float64) {
	weights := experiencedWeights
	if resumeSections.IsFresher {
		weights = fresherWeights
	}

	sectionScores := make(map[string]float64, len(types.SectionNames))
	weightedSum := 0.0
	totalWeight := 0.0

	for _, section := range types.SectionNames {
		weight := weights[section]
		if weight == 0 {
			sectionScores[section] = 0.0
			continue
		}

		prob := 0.0
		text := resumeSections.Get(section)
		if strings.TrimSpace(text) != "" && clf != nil {
			prob = clf.PredictMatchProbability(text)
		}

		sectionScores[section] = round2(prob)
		weightedSum += prob * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0.0, sectionScores
	}
	return round1((weightedSum / totalWeight) * 100), sectionScores
}

// MatchLevelFor maps a 0-100 composite score to its qualitative level. The
// boundaries are inclusive on the lower bound.
func MatchLevelFor(score float64) types.MatchLevel {
	switch {
	case score >= 81:
		return types.MatchStrong
	case score >= 66:
		return types.MatchGood
	case score >= 41:
		return types.MatchModerate
	default:
		return types.MatchLow
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
