// Package sections splits raw resume text into labeled sections and derives
// the candidate's fresher status.
package sections

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// headingPatterns maps each section name to the heading phrases that open it.
// Matching is done against lower-cased text, so the patterns are lower-case.
var headingPatterns = map[string]*regexp.Regexp{
	types.SectionSkills:         regexp.MustCompile(`\b(skills|technical skills|core competencies|expertise)\b`),
	types.SectionExperience:     regexp.MustCompile(`\b(experience|work experience|professional experience|employment history)\b`),
	types.SectionProjects:       regexp.MustCompile(`\b(projects|academic projects|personal projects)\b`),
	types.SectionEducation:      regexp.MustCompile(`\b(education|academic background|qualification)\b`),
	types.SectionCertifications: regexp.MustCompile(`\b(certifications|certificates|licenses)\b`),
}

var (
	fresherKeywordPattern = regexp.MustCompile(`\b(fresher|student|recent graduate)\b`)
	durationPattern       = regexp.MustCompile(`\b\d+\+?\s*(years?|yrs?)\b`)
)

// headingMatch records where a heading for a section starts in the text.
type headingMatch struct {
	pos     int
	section string
}

// Extract splits resume text into labeled sections. Section bodies run from
// the line after the heading to the next heading of any kind; a heading that
// recurs has its bodies concatenated in order of appearance. Sections that
// never match stay empty.
func Extract(resumeText string) types.ResumeSections {
	text := strings.ToLower(resumeText)

	var matches []headingMatch
	for _, section := range types.SectionNames {
		for _, loc := range headingPatterns[section].FindAllStringIndex(text, -1) {
			matches = append(matches, headingMatch{pos: loc[0], section: section})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	var out types.ResumeSections
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1].pos
		}
		body := sectionBody(text[m.pos:end])

		if existing := out.Get(m.section); existing != "" {
			out.Set(m.section, existing+"\n"+body)
		} else {
			out.Set(m.section, body)
		}
	}

	out.IsFresher = detectFresher(text)
	return out
}

// sectionBody strips the heading's own line from a captured block. A heading
// with no following newline has an empty body.
func sectionBody(block string) string {
	_, rest, found := strings.Cut(block, "\n")
	if !found {
		return ""
	}
	return strings.TrimSpace(rest)
}

// detectFresher reports whether the candidate reads as a fresher: either an
// explicit keyword appears, or no experience-duration phrase appears anywhere
// in the text. The two signals are independent ("0 years" counts as a
// duration and disables the fallback).
func detectFresher(lowerText string) bool {
	if fresherKeywordPattern.MatchString(lowerText) {
		return true
	}
	return !durationPattern.MatchString(lowerText)
}
