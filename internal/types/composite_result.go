// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchLevel is the qualitative label attached to a composite score.
type MatchLevel string

// Match levels, from weakest to strongest.
const (
	MatchLow      MatchLevel = "Low Match"
	MatchModerate MatchLevel = "Moderate Match"
	MatchGood     MatchLevel = "Good Match"
	MatchStrong   MatchLevel = "Strong Match"
)

// ScoreBreakdown holds the per-section match probabilities (0-1, rounded to
// two decimals) and the weighted section score on a 0-100 scale.
type ScoreBreakdown struct {
	SectionScores map[string]float64 `json:"section_scores"`
	FinalScore    float64            `json:"final_score"`
}

// CompositeResult is the outcome of scoring one resume against one domain.
// It is never mutated after construction.
type CompositeResult struct {
	Domain        string          `json:"domain"`
	FinalScore    float64         `json:"final_score"`
	MatchLevel    MatchLevel      `json:"match_level"`
	MissingSkills []string        `json:"missing_skills"`
	Sections      ResumeSections  `json:"sections"`
	IsFresher     bool            `json:"is_fresher"`
	Breakdown     *ScoreBreakdown `json:"breakdown,omitempty"`
}

// DomainScore pairs a domain name with its composite score.
type DomainScore struct {
	Domain string  `json:"domain"`
	Score  float64 `json:"score"`
}

// DomainScoreTable maps domain names to composite scores for one resume.
// Entries preserve insertion order so that downstream stable sorts break
// ties deterministically.
type DomainScoreTable struct {
	Entries []DomainScore `json:"entries"`
}

// Add appends a domain score, replacing any existing entry for the domain.
func (t *DomainScoreTable) Add(domain string, score float64) {
	for i := range t.Entries {
		if t.Entries[i].Domain == domain {
			t.Entries[i].Score = score
			return
		}
	}
	t.Entries = append(t.Entries, DomainScore{Domain: domain, Score: score})
}

// Get returns the score for a domain, or 0 if the domain is unknown.
func (t *DomainScoreTable) Get(domain string) float64 {
	for _, e := range t.Entries {
		if e.Domain == domain {
			return e.Score
		}
	}
	return 0
}
