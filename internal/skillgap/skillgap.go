// Package skillgap computes the set of skills a job description asks for that
// a resume does not mention. It prefers a structured "Required Skills:" line
// in the job description and falls back to a fixed skill vocabulary.
package skillgap

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var requiredSkillsLine = regexp.MustCompile(`required skills:(.*)`)

// vocabularyPatterns holds a compiled whole-word pattern per vocabulary entry,
// in vocabulary order.
var vocabularyPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(vocabulary))
	for i, skill := range vocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}()

// ExtractVocabularySkills returns the vocabulary skills present in text as
// whole-word matches, in vocabulary order, lower-cased.
func ExtractVocabularySkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for i, pattern := range vocabularyPatterns {
		if pattern.MatchString(lower) {
			found = append(found, vocabulary[i])
		}
	}
	return found
}

// ParseRequiredSkills parses the structured "Required Skills:" line of a job
// description. It returns the comma-separated, trimmed, lower-cased skill
// tokens in order of appearance, deduplicated, or nil when the line is absent.
func ParseRequiredSkills(jdText string) []string {
	m := requiredSkillsLine.FindStringSubmatch(strings.ToLower(jdText))
	if m == nil {
		return nil
	}

	var skills []string
	seen := make(map[string]bool)
	for _, token := range strings.Split(m[1], ",") {
		token = strings.TrimSpace(token)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		skills = append(skills, token)
	}
	return skills
}

// MissingSkills returns the skills the job description requires that the
// resume does not mention. The structured path is preferred: each required
// skill absent from the lower-cased resume text (substring check) is returned
// title-cased, in job-description order. When no structured line exists, the
// vocabulary fallback returns the difference of the two vocabulary skill
// sets. An empty result is normal, never an error.
func MissingSkills(resumeText, jdText string) []string {
	if required := ParseRequiredSkills(jdText); len(required) > 0 {
		resumeLower := strings.ToLower(resumeText)
		// A cases.Caser is stateful and not safe for concurrent use, so each
		// call gets its own.
		titleCaser := cases.Title(language.English)
		missing := []string{}
		for _, skill := range required {
			if !strings.Contains(resumeLower, skill) {
				missing = append(missing, titleCaser.String(skill))
			}
		}
		return missing
	}
	return missingFromVocabulary(resumeText, jdText)
}

// missingFromVocabulary computes (JD vocabulary skills) minus (resume
// vocabulary skills), in vocabulary order.
func missingFromVocabulary(resumeText, jdText string) []string {
	resumeSkills := make(map[string]bool)
	for _, skill := range ExtractVocabularySkills(resumeText) {
		resumeSkills[skill] = true
	}

	missing := []string{}
	for _, skill := range ExtractVocabularySkills(jdText) {
		if !resumeSkills[skill] {
			missing = append(missing, skill)
		}
	}
	return missing
}
