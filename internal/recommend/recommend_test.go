package recommend

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func table(entries ...types.DomainScore) *types.DomainScoreTable {
	return &types.DomainScoreTable{Entries: entries}
}

func TestBetterDomains_TopTwoByScore(t *testing.T) {
	scores := table(
		types.DomainScore{Domain: "A", Score: 70},
		types.DomainScore{Domain: "B", Score: 85},
		types.DomainScore{Domain: "C", Score: 90},
		types.DomainScore{Domain: "D", Score: 60},
	)

	got := BetterDomains(scores, "A")

	assert.Equal(t, []types.DomainScore{
		{Domain: "C", Score: 90},
		{Domain: "B", Score: 85},
	}, got)
}

func TestBetterDomains_NoneBetter(t *testing.T) {
	scores := table(
		types.DomainScore{Domain: "A", Score: 90},
		types.DomainScore{Domain: "B", Score: 85},
	)

	assert.Empty(t, BetterDomains(scores, "A"))
}

func TestBetterDomains_EqualScoreIsNotBetter(t *testing.T) {
	scores := table(
		types.DomainScore{Domain: "A", Score: 80},
		types.DomainScore{Domain: "B", Score: 80},
	)

	assert.Empty(t, BetterDomains(scores, "A"))
}

func TestBetterDomains_TiesKeepTableOrder(t *testing.T) {
	scores := table(
		types.DomainScore{Domain: "A", Score: 10},
		types.DomainScore{Domain: "B", Score: 50},
		types.DomainScore{Domain: "C", Score: 50},
		types.DomainScore{Domain: "D", Score: 50},
	)

	got := BetterDomains(scores, "A")

	assert.Equal(t, []types.DomainScore{
		{Domain: "B", Score: 50},
		{Domain: "C", Score: 50},
	}, got)
}

func TestBetterDomains_UnknownCurrentDomainTreatedAsZero(t *testing.T) {
	scores := table(
		types.DomainScore{Domain: "A", Score: 0},
		types.DomainScore{Domain: "B", Score: 5},
	)

	got := BetterDomains(scores, "missing")

	assert.Equal(t, []types.DomainScore{{Domain: "B", Score: 5}}, got)
}
