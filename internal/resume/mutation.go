package resume

// Field identifies a canonical resume field targeted by a mutation.
type Field string

// Canonical fields, grouped by section.
const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldLocation Field = "location"
	FieldSummary  Field = "summary"

	FieldCompany  Field = "company"
	FieldJobTitle Field = "jobTitle"
	FieldDate     Field = "date"

	FieldSchool Field = "school"
	FieldDegree Field = "degree"
	FieldGPA    Field = "gpa"

	FieldProject Field = "project"
)

// Op is the kind of a mutation.
type Op int

const (
	OpSetProfileField Op = iota
	OpSetExperienceField
	OpSetExperienceDescriptions
	OpSetEducationField
	OpSetProjectField
	OpSetProjectDescriptions
	OpSetFeaturedSkill
	OpSetSkillsDescriptions
	OpAppendCustomDescriptions
)

// Mutation is one atomic intent against the resume document. Mutations are
// produced by the normalizer and applied by the store in the order emitted.
type Mutation struct {
	Op     Op
	Field  Field
	Index  int
	Value  string
	Values []string
	Rating int
}

// SetProfileField sets one flat profile field.
func SetProfileField(field Field, value string) Mutation {
	return Mutation{Op: OpSetProfileField, Field: field, Value: value}
}

// SetExperienceField sets one scalar field of the work experience at index.
func SetExperienceField(index int, field Field, value string) Mutation {
	return Mutation{Op: OpSetExperienceField, Index: index, Field: field, Value: value}
}

// SetExperienceDescriptions replaces the description list of the work
// experience at index.
func SetExperienceDescriptions(index int, values []string) Mutation {
	return Mutation{Op: OpSetExperienceDescriptions, Index: index, Values: values}
}

// SetEducationField sets one scalar field of the education at index.
func SetEducationField(index int, field Field, value string) Mutation {
	return Mutation{Op: OpSetEducationField, Index: index, Field: field, Value: value}
}

// SetProjectField sets one scalar field of the project at index.
func SetProjectField(index int, field Field, value string) Mutation {
	return Mutation{Op: OpSetProjectField, Index: index, Field: field, Value: value}
}

// SetProjectDescriptions replaces the description list of the project at index.
func SetProjectDescriptions(index int, values []string) Mutation {
	return Mutation{Op: OpSetProjectDescriptions, Index: index, Values: values}
}

// SetFeaturedSkill sets the featured skill slot at index.
func SetFeaturedSkill(index int, skill string, rating int) Mutation {
	return Mutation{Op: OpSetFeaturedSkill, Index: index, Value: skill, Rating: rating}
}

// SetSkillsDescriptions replaces the skills section's free-text descriptions.
func SetSkillsDescriptions(values []string) Mutation {
	return Mutation{Op: OpSetSkillsDescriptions, Values: values}
}

// AppendCustomDescriptions appends lines to the custom section. This is the
// one operation with append rather than replace semantics.
func AppendCustomDescriptions(values []string) Mutation {
	return Mutation{Op: OpAppendCustomDescriptions, Values: values}
}
