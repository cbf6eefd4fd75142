// Package recommend surfaces alternative domains that fit a resume better
// than the one the candidate targeted.
package recommend

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// MaxRecommendations caps how many better-fitting domains are returned.
const MaxRecommendations = 2

// BetterDomains returns the domains whose composite score strictly exceeds
// the current domain's, ordered by score descending with ties kept in table
// order, capped at MaxRecommendations. An empty result means the current
// domain is the best fit.
func BetterDomains(scores *types.DomainScoreTable, currentDomain string) []types.DomainScore {
	currentScore := scores.Get(currentDomain)

	var better []types.DomainScore
	for _, entry := range scores.Entries {
		if entry.Domain == currentDomain {
			continue
		}
		if entry.Score > currentScore {
			better = append(better, entry)
		}
	}

	sort.SliceStable(better, func(i, j int) bool { return better[i].Score > better[j].Score })

	if len(better) > MaxRecommendations {
		better = better[:MaxRecommendations]
	}
	return better
}
