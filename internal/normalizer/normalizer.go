// Package normalizer converts extracted sections into canonical mutation
// sequences. Field names arriving from the model are mapped through static
// per-section tables; anything unmapped or of the wrong type is dropped
// silently so a bad field never aborts the batch.
package normalizer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/chatfolio/chatfolio/internal/domain"
	"github.com/chatfolio/chatfolio/internal/resume"
)

// Section names accepted from the extraction payload.
const (
	SectionProfile        = "profile"
	SectionWorkExperience = "workExperience"
	SectionEducations     = "educations"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCustom         = "custom"
)

// Extraction always addresses the first entry of a list section.
const targetIndex = 0

var profileFields = map[string]resume.Field{
	"name":     resume.FieldName,
	"email":    resume.FieldEmail,
	"phone":    resume.FieldPhone,
	"location": resume.FieldLocation,
	"summary":  resume.FieldSummary,
}

// listField maps a raw name onto either a scalar canonical field or the
// entry's multi-line descriptions list.
type listField struct {
	field        resume.Field
	descriptions bool
}

var experienceFields = map[string]listField{
	"company":     {field: resume.FieldCompany},
	"position":    {field: resume.FieldJobTitle},
	"jobTitle":    {field: resume.FieldJobTitle},
	"date":        {field: resume.FieldDate},
	"description": {descriptions: true},
}

var projectFields = map[string]listField{
	"name":        {field: resume.FieldProject},
	"project":     {field: resume.FieldProject},
	"date":        {field: resume.FieldDate},
	"description": {descriptions: true},
}

// year and date are aliases for the same canonical field.
var educationFields = map[string]resume.Field{
	"school": resume.FieldSchool,
	"degree": resume.FieldDegree,
	"year":   resume.FieldDate,
	"date":   resume.FieldDate,
	"gpa":    resume.FieldGPA,
}

// Normalize turns one extracted section into an ordered mutation sequence.
// Unknown section names yield nil. Normalize never fails: fields with
// unexpected types are skipped, not errors.
func Normalize(section string, fields map[string]any) []resume.Mutation {
	switch section {
	case SectionProfile:
		return normalizeProfile(fields)
	case SectionWorkExperience:
		return normalizeExperience(fields)
	case SectionEducations:
		return normalizeEducations(fields)
	case SectionSkills:
		return normalizeSkills(fields)
	case SectionProjects:
		return normalizeProjects(fields)
	case SectionCustom:
		return normalizeCustom(fields)
	}
	return nil
}

func normalizeProfile(fields map[string]any) []resume.Mutation {
	var muts []resume.Mutation
	for _, name := range sortedKeys(fields) {
		value, ok := nonEmptyString(fields[name])
		if !ok {
			continue
		}
		if canonical, ok := profileFields[name]; ok {
			muts = append(muts, resume.SetProfileField(canonical, value))
		}
	}
	return muts
}

func normalizeExperience(fields map[string]any) []resume.Mutation {
	var muts []resume.Mutation
	for _, name := range sortedKeys(fields) {
		value, ok := nonEmptyString(fields[name])
		if !ok {
			continue
		}
		mapped, ok := experienceFields[name]
		if !ok {
			continue
		}
		if mapped.descriptions {
			// A single free-text description replaces the entry's list.
			muts = append(muts, resume.SetExperienceDescriptions(targetIndex, []string{value}))
		} else {
			muts = append(muts, resume.SetExperienceField(targetIndex, mapped.field, value))
		}
	}
	return muts
}

func normalizeProjects(fields map[string]any) []resume.Mutation {
	var muts []resume.Mutation
	for _, name := range sortedKeys(fields) {
		value, ok := nonEmptyString(fields[name])
		if !ok {
			continue
		}
		mapped, ok := projectFields[name]
		if !ok {
			continue
		}
		if mapped.descriptions {
			muts = append(muts, resume.SetProjectDescriptions(targetIndex, []string{value}))
		} else {
			muts = append(muts, resume.SetProjectField(targetIndex, mapped.field, value))
		}
	}
	return muts
}

func normalizeEducations(fields map[string]any) []resume.Mutation {
	var muts []resume.Mutation
	for _, name := range sortedKeys(fields) {
		value, ok := nonEmptyString(fields[name])
		if !ok {
			continue
		}
		if canonical, ok := educationFields[name]; ok {
			muts = append(muts, resume.SetEducationField(targetIndex, canonical, value))
		}
	}
	return muts
}

func normalizeSkills(fields map[string]any) []resume.Mutation {
	var muts []resume.Mutation

	if technical, ok := stringSliceKeepIndex(fields["technical"]); ok {
		for i, skill := range technical {
			if skill == "" {
				continue
			}
			muts = append(muts, resume.SetFeaturedSkill(i, skill, domain.DefaultFeaturedSkillRating))
		}
	}

	if soft, ok := stringSlice(fields["soft"]); ok {
		line := "Soft Skills: " + strings.Join(soft, ", ")
		muts = append(muts, resume.SetSkillsDescriptions([]string{line}))
	}

	return muts
}

func normalizeCustom(fields map[string]any) []resume.Mutation {
	var muts []resume.Mutation
	for _, name := range sortedKeys(fields) {
		values, ok := stringSlice(fields[name])
		if !ok {
			continue
		}
		line := capitalize(name) + ": " + strings.Join(values, ", ")
		muts = append(muts, resume.AppendCustomDescriptions([]string{line}))
	}
	return muts
}

// sortedKeys fixes the iteration order: decoded JSON objects land in maps
// whose range order is random, and append-semantics sections must emit the
// same lines on every run with the same input.
func sortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// stringSlice accepts []string directly or a decoded JSON array, keeping
// only string elements.
func stringSlice(v any) ([]string, bool) {
	switch vals := v.(type) {
	case []string:
		return vals, true
	case []any:
		out := make([]string, 0, len(vals))
		for _, e := range vals {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

// stringSliceKeepIndex is like stringSlice but preserves element positions,
// so a skipped element does not shift later skills into earlier slots.
func stringSliceKeepIndex(v any) ([]string, bool) {
	switch vals := v.(type) {
	case []string:
		return vals, true
	case []any:
		out := make([]string, len(vals))
		for i, e := range vals {
			if s, ok := e.(string); ok {
				out[i] = s
			}
		}
		return out, true
	}
	return nil, false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
