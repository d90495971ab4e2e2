package domain

// Profile is the flat top section of a resume.
type Profile struct {
	Name     string `json:"name"`
	Summary  string `json:"summary"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// WorkExperience is one entry in the work history.
type WorkExperience struct {
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// Education is one entry in the education history.
type Education struct {
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Date         string   `json:"date"`
	GPA          string   `json:"gpa"`
	Descriptions []string `json:"descriptions"`
}

// Project is one entry in the projects list.
type Project struct {
	Project      string   `json:"project"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// FeaturedSkill is a named skill with a 1-5 proficiency rating.
type FeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating"`
}

// Skills holds the featured-skill list plus free-text descriptions.
type Skills struct {
	FeaturedSkills []FeaturedSkill `json:"featuredSkills"`
	Descriptions   []string        `json:"descriptions"`
}

// Custom is the free-form section (certifications, languages, hobbies...).
type Custom struct {
	Descriptions []string `json:"descriptions"`
}

// ResumeDocument is the canonical resume consumed by the renderer/exporter.
// It is always a structurally complete instance of this schema: every
// section is present and every list section has at least one entry, even
// when all fields are empty.
type ResumeDocument struct {
	Profile         Profile          `json:"profile"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Educations      []Education      `json:"educations"`
	Projects        []Project        `json:"projects"`
	Skills          Skills           `json:"skills"`
	Custom          Custom           `json:"custom"`
}

// DefaultFeaturedSkillRating is the proficiency assigned when the source
// does not carry one.
const DefaultFeaturedSkillRating = 4

// NewResumeDocument returns the initial empty document.
func NewResumeDocument() *ResumeDocument {
	featured := make([]FeaturedSkill, 6)
	for i := range featured {
		featured[i] = FeaturedSkill{Rating: DefaultFeaturedSkillRating}
	}
	return &ResumeDocument{
		WorkExperiences: []WorkExperience{{Descriptions: []string{}}},
		Educations:      []Education{{Descriptions: []string{}}},
		Projects:        []Project{{Descriptions: []string{}}},
		Skills: Skills{
			FeaturedSkills: featured,
			Descriptions:   []string{},
		},
		Custom: Custom{Descriptions: []string{}},
	}
}
