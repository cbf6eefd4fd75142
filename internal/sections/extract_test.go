package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Doe
Recent Graduate

Technical Skills
Python, SQL, Machine Learning, NLP

Education
B.Tech in Computer Science, 2024

Academic Projects
Resume Screening System: Built an NLP based system.

Certifications
AWS Certified Cloud Practitioner
`

func TestExtract_LabeledSections(t *testing.T) {
	got := Extract(sampleResume)

	assert.Equal(t, "python, sql, machine learning, nlp", got.Skills)
	assert.Equal(t, "b.tech in computer science, 2024", got.Education)
	assert.Equal(t, "resume screening system: built an nlp based system.", got.Projects)
	assert.Equal(t, "aws certified cloud practitioner", got.Certifications)
	assert.Equal(t, "", got.Experience)
}

func TestExtract_BodyRunsUntilNextHeading(t *testing.T) {
	got := Extract("Skills\nGo\nKubernetes\nEducation\nBSc")

	assert.Equal(t, "go\nkubernetes", got.Skills)
	assert.Equal(t, "bsc", got.Education)
}

func TestExtract_DuplicateHeadingsConcatenate(t *testing.T) {
	text := "Projects\nAlpha\nEducation\nBSc\nProjects\nBeta\n"
	got := Extract(text)

	assert.Equal(t, "alpha\nbeta", got.Projects)
	assert.Equal(t, "bsc", got.Education)
}

func TestExtract_HeadingWithoutNewlineHasEmptyBody(t *testing.T) {
	got := Extract("Skills")

	assert.Equal(t, "", got.Skills)
}

func TestExtract_BackToBackHeadingsYieldEmptySection(t *testing.T) {
	got := Extract("Skills\nExperience\n3 years at Acme")

	assert.Equal(t, "", got.Skills)
	assert.Equal(t, "3 years at acme", got.Experience)
}

func TestExtract_NoHeadingsLeavesSectionsEmpty(t *testing.T) {
	got := Extract("just a plain paragraph about nothing in particular")

	assert.Equal(t, "", got.Skills)
	assert.Equal(t, "", got.Experience)
	assert.Equal(t, "", got.Projects)
	assert.Equal(t, "", got.Education)
	assert.Equal(t, "", got.Certifications)
}

func TestExtract_EmptyInput(t *testing.T) {
	got := Extract("")

	assert.Equal(t, "", got.Skills)
	assert.True(t, got.IsFresher) // no duration evidence
}

func TestExtract_FresherByKeyword(t *testing.T) {
	// Keyword evidence is sufficient on its own.
	got := Extract("Jane Roe\nRecent Graduate\nSkills\nPython")
	assert.True(t, got.IsFresher)

	got = Extract("A fresher looking for a first role with 5 years of coursework")
	assert.True(t, got.IsFresher)
}

func TestExtract_FresherByMissingDuration(t *testing.T) {
	got := Extract("Skills\nPython, SQL\nExperience\nInternship at Acme")
	assert.True(t, got.IsFresher)
}

func TestExtract_NotFresherWithDuration(t *testing.T) {
	assert.False(t, Extract("Experience\n5 years building backend services").IsFresher)
	assert.False(t, Extract("Experience\n3+ yrs with Go").IsFresher)
}

func TestExtract_ZeroYearsCountsAsDuration(t *testing.T) {
	// "0 years" is duration evidence, so the fallback does not fire.
	assert.False(t, Extract("Experience\n0 years in industry").IsFresher)
}
