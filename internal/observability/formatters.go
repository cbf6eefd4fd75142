// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of missing skills to display
	maxSkillsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of a scored resume.
func (p *Printer) PrintResult(result *types.CompositeResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Domain:   %s\n", result.Domain))
	sb.WriteString(fmt.Sprintf("Score:    %.2f / 100\n", result.FinalScore))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", result.MatchLevel))
	profile := "experienced"
	if result.IsFresher {
		profile = "fresher"
	}
	sb.WriteString(fmt.Sprintf("Profile:  %s", profile))

	p.printBox("SCREENING RESULT", sb.String())
}

// PrintSectionBreakdown outputs per-section classifier probabilities.
func (p *Printer) PrintSectionBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil || len(breakdown.SectionScores) == 0 {
		return
	}

	var sb strings.Builder
	for _, name := range types.SectionNames {
		score, ok := breakdown.SectionScores[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-16s %.2f\n", name, score))
	}
	sb.WriteString(fmt.Sprintf("\nWeighted section score: %.1f / 100", breakdown.FinalScore))

	p.printBox("SECTION BREAKDOWN", sb.String())
}

// PrintMissingSkills outputs skills required by the job description that the
// resume does not mention.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMissingSkills(skills []string) {
	if len(skills) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO MISSING SKILLS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d missing skills:\n\n", len(skills)))

	count := min(len(skills), maxSkillsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxSkillsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxSkillsToShow))
	}

	p.printBox("MISSING SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs alternative domains that scored higher than
// the requested one.
func (p *Printer) PrintRecommendations(recs []types.DomainScore, current string) {
	if len(recs) == 0 {
		p.printBox("RECOMMENDATIONS", fmt.Sprintf("Best fit: %s", current))
		return
	}

	var sb strings.Builder
	sb.WriteString("Stronger matches found:\n\n")
	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("#%d  %-24s %.2f\n", i+1, rec.Domain, rec.Score))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the full verbose report for an analysis run.
func (p *Printer) PrintAnalysis(analysis *pipeline.AnalysisResult) {
	if analysis == nil || analysis.Result == nil {
		return
	}

	p.PrintResult(analysis.Result)
	p.PrintSectionBreakdown(analysis.Result.Breakdown)
	p.PrintMissingSkills(analysis.Result.MissingSkills)
	p.PrintRecommendations(analysis.Recommendations, analysis.Result.Domain)
}
