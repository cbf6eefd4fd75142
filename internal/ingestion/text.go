// Package ingestion extracts plain resume text from uploaded files. Format is
// selected by file extension; extraction failures surface as errors that the
// scoring pipeline maps to its empty-input degradation path.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpacePattern = regexp.MustCompile(`[ \t]+`)
	blankLinesPattern = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted resume text while preserving its line
// structure, which the section extractor relies on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings first.
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses runs of spaces, keeping bullet
// markers intact.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return multiSpacePattern.ReplaceAllString(trimmed, " ")
}
