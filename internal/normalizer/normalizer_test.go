package normalizer

import (
	"testing"

	"github.com/chatfolio/chatfolio/internal/domain"
	"github.com/chatfolio/chatfolio/internal/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfile(t *testing.T) {
	muts := Normalize(SectionProfile, map[string]any{
		"name":     "Asha",
		"email":    "asha@x.com",
		"twitter":  "@asha",      // not in the mapping table
		"phone":    "",           // empty string is skipped
		"location": 42,           // wrong type is skipped
		"summary":  "Engineer.",
	})

	assert.ElementsMatch(t, []resume.Mutation{
		resume.SetProfileField(resume.FieldName, "Asha"),
		resume.SetProfileField(resume.FieldEmail, "asha@x.com"),
		resume.SetProfileField(resume.FieldSummary, "Engineer."),
	}, muts)
}

func TestNormalizeWorkExperienceTargetsFirstEntry(t *testing.T) {
	muts := Normalize(SectionWorkExperience, map[string]any{
		"company":     "Acme",
		"position":    "SRE",
		"date":        "2020-2023",
		"description": "Kept the pagers quiet",
	})

	assert.ElementsMatch(t, []resume.Mutation{
		resume.SetExperienceField(0, resume.FieldCompany, "Acme"),
		resume.SetExperienceField(0, resume.FieldJobTitle, "SRE"),
		resume.SetExperienceField(0, resume.FieldDate, "2020-2023"),
		resume.SetExperienceDescriptions(0, []string{"Kept the pagers quiet"}),
	}, muts)
}

func TestNormalizeEducationsYearDateAlias(t *testing.T) {
	for _, raw := range []string{"year", "date"} {
		muts := Normalize(SectionEducations, map[string]any{raw: "2019"})
		require.Len(t, muts, 1, raw)
		assert.Equal(t, resume.SetEducationField(0, resume.FieldDate, "2019"), muts[0], raw)
	}
}

func TestNormalizeEducations(t *testing.T) {
	muts := Normalize(SectionEducations, map[string]any{
		"school": "MIT",
		"degree": "BSc",
		"gpa":    "3.9",
		"minor":  "Math", // unmapped
	})

	assert.ElementsMatch(t, []resume.Mutation{
		resume.SetEducationField(0, resume.FieldSchool, "MIT"),
		resume.SetEducationField(0, resume.FieldDegree, "BSc"),
		resume.SetEducationField(0, resume.FieldGPA, "3.9"),
	}, muts)
}

func TestNormalizeProjectsNameAlias(t *testing.T) {
	muts := Normalize(SectionProjects, map[string]any{
		"name":        "chatfolio",
		"description": "Resume chatbot",
	})

	assert.ElementsMatch(t, []resume.Mutation{
		resume.SetProjectField(0, resume.FieldProject, "chatfolio"),
		resume.SetProjectDescriptions(0, []string{"Resume chatbot"}),
	}, muts)
}

func TestNormalizeSkillsTechnical(t *testing.T) {
	muts := Normalize(SectionSkills, map[string]any{
		"technical": []any{"Python", "Go"},
	})

	require.Len(t, muts, 2)
	assert.Equal(t, resume.SetFeaturedSkill(0, "Python", domain.DefaultFeaturedSkillRating), muts[0])
	assert.Equal(t, resume.SetFeaturedSkill(1, "Go", domain.DefaultFeaturedSkillRating), muts[1])
}

func TestNormalizeSkillsSoft(t *testing.T) {
	muts := Normalize(SectionSkills, map[string]any{
		"soft": []any{"Teamwork", "Communication"},
	})

	require.Len(t, muts, 1)
	assert.Equal(t, resume.SetSkillsDescriptions([]string{"Soft Skills: Teamwork, Communication"}), muts[0])
}

func TestNormalizeSkillsWrongTypes(t *testing.T) {
	muts := Normalize(SectionSkills, map[string]any{
		"technical": "Python", // must be an array
		"soft":      map[string]any{"a": "b"},
	})
	assert.Empty(t, muts)
}

func TestNormalizeCustomAppendsLabeledLines(t *testing.T) {
	muts := Normalize(SectionCustom, map[string]any{
		"languages":      []any{"English", "Hindi"},
		"certifications": []any{"CKA"},
		"hobby":          "chess", // non-array is skipped
	})

	// Keys are emitted in sorted order.
	require.Len(t, muts, 2)
	assert.Equal(t, resume.AppendCustomDescriptions([]string{"Certifications: CKA"}), muts[0])
	assert.Equal(t, resume.AppendCustomDescriptions([]string{"Languages: English, Hindi"}), muts[1])
}

func TestNormalizeUnknownSection(t *testing.T) {
	assert.Nil(t, Normalize("references", map[string]any{"a": "b"}))
	assert.Nil(t, Normalize("", map[string]any{"a": "b"}))
}

func TestNormalizeDeterministicAcrossRuns(t *testing.T) {
	fields := map[string]any{
		"languages": []any{"English"},
		"awards":    []any{"Dean's list"},
		"interests": []any{"Chess", "Running"},
	}

	first := Normalize(SectionCustom, fields)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Normalize(SectionCustom, fields))
	}
}
