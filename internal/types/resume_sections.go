// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section names recognized by the section extractor.
const (
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
)

// SectionNames lists all recognized section names in canonical order.
var SectionNames = []string{
	SectionSkills,
	SectionExperience,
	SectionProjects,
	SectionEducation,
	SectionCertifications,
}

// ResumeSections holds the text extracted for each labeled resume section,
// plus the fresher flag derived from the full resume text. Absent sections
// are empty strings, never omitted.
type ResumeSections struct {
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Projects       string `json:"projects"`
	Education      string `json:"education"`
	Certifications string `json:"certifications"`
	IsFresher      bool   `json:"is_fresher"`
}

// Get returns the text for a named section. Unknown names return "".
func (s *ResumeSections) Get(name string) string {
	switch name {
	case SectionSkills:
		return s.Skills
	case SectionExperience:
		return s.Experience
	case SectionProjects:
		return s.Projects
	case SectionEducation:
		return s.Education
	case SectionCertifications:
		return s.Certifications
	}
	return ""
}

// Set stores text for a named section. Unknown names are ignored.
func (s *ResumeSections) Set(name, text string) {
	switch name {
	case SectionSkills:
		s.Skills = text
	case SectionExperience:
		s.Experience = text
	case SectionProjects:
		s.Projects = text
	case SectionEducation:
		s.Education = text
	case SectionCertifications:
		s.Certifications = text
	}
}
