package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.CompositeResult{
		Domain:     "data science",
		FinalScore: 72.45,
		MatchLevel: types.MatchGood,
		IsFresher:  true,
	}

	p.PrintResult(result)
	output := buf.String()

	assert.Contains(t, output, "SCREENING RESULT")
	assert.Contains(t, output, "data science")
	assert.Contains(t, output, "72.45")
	assert.Contains(t, output, "Good Match")
	assert.Contains(t, output, "fresher")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSectionBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	breakdown := &types.ScoreBreakdown{
		SectionScores: map[string]float64{
			types.SectionSkills:    0.82,
			types.SectionProjects:  0.55,
			types.SectionEducation: 0.3,
		},
		FinalScore: 61.5,
	}

	p.PrintSectionBreakdown(breakdown)
	output := buf.String()

	assert.Contains(t, output, "SECTION BREAKDOWN")
	assert.Contains(t, output, "skills")
	assert.Contains(t, output, "0.82")
	assert.Contains(t, output, "61.5")
	// Sections follow canonical order, skills before projects
	assert.Less(t, strings.Index(output, "skills"), strings.Index(output, "projects"))
}

func TestPrintSectionBreakdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSectionBreakdown(&types.ScoreBreakdown{})

	assert.Empty(t, buf.String())
}

func TestPrintMissingSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMissingSkills([]string{"Kubernetes", "Terraform"})
	output := buf.String()

	assert.Contains(t, output, "MISSING SKILLS")
	assert.Contains(t, output, "Kubernetes")
	assert.Contains(t, output, "Terraform")
	assert.Contains(t, output, "Found 2 missing skills")
}

func TestPrintMissingSkills_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMissingSkills(nil)

	assert.Contains(t, buf.String(), "NO MISSING SKILLS")
}

func TestPrintMissingSkills_Truncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
	}
	p.PrintMissingSkills(skills)
	output := buf.String()

	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "• L")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := []types.DomainScore{
		{Domain: "web development", Score: 90.0},
		{Domain: "devops", Score: 85.5},
	}

	p.PrintRecommendations(recs, "data science")
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "#1")
	assert.Contains(t, output, "web development")
	assert.Contains(t, output, "85.50")
}

func TestPrintRecommendations_BestFit(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil, "data science")
	output := buf.String()

	assert.Contains(t, output, "Best fit: data science")
}
