// Package resume owns the canonical resume document. All writes go through
// typed mutation operations; no other package touches document fields
// directly, which keeps the at-most-one-writer invariant.
package resume

import (
	"sync"

	"github.com/chatfolio/chatfolio/internal/domain"
	"go.uber.org/zap"
)

// Repository is the persistence contract the store needs.
type Repository interface {
	Save(key string, doc *domain.ResumeDocument) error
	Load(key string) (*domain.ResumeDocument, error)
	Delete(key string) error
}

// Store holds one resume document per session key. In-memory state is
// authoritative; persistence is best effort and never interrupts a turn.
type Store struct {
	repo   Repository
	logger *zap.Logger

	mu   sync.Mutex
	docs map[string]*domain.ResumeDocument
}

// NewStore creates a new resume store
func NewStore(repo Repository, logger *zap.Logger) *Store {
	return &Store{
		repo:   repo,
		logger: logger,
		docs:   make(map[string]*domain.ResumeDocument),
	}
}

// Document returns a snapshot of the document for a session key.
func (s *Store) Document(key string) domain.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *clone(s.doc(key))
}

// Apply applies mutations in the order given. Each mutation is atomic; the
// document is persisted once after the batch.
func (s *Store) Apply(key string, muts []Mutation) {
	if len(muts) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc(key)
	for _, m := range muts {
		apply(doc, m)
	}
	s.persist(key, doc)
}

// Reset restores the document for a session key to its initial empty schema.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = domain.NewResumeDocument()
	if err := s.repo.Delete(key); err != nil {
		s.logger.Warn("failed to erase persisted resume", zap.String("key", key), zap.Error(err))
	}
}

// doc returns the live document for a key, loading persisted state on first
// access. Callers must hold s.mu.
func (s *Store) doc(key string) *domain.ResumeDocument {
	if doc, ok := s.docs[key]; ok {
		return doc
	}

	doc, err := s.repo.Load(key)
	if err != nil {
		s.logger.Warn("failed to load persisted resume, starting fresh",
			zap.String("key", key), zap.Error(err))
		doc = nil
	}
	if doc == nil {
		doc = domain.NewResumeDocument()
	}

	s.docs[key] = doc
	return doc
}

func (s *Store) persist(key string, doc *domain.ResumeDocument) {
	if err := s.repo.Save(key, doc); err != nil {
		s.logger.Warn("failed to persist resume", zap.String("key", key), zap.Error(err))
	}
}

func apply(doc *domain.ResumeDocument, m Mutation) {
	switch m.Op {
	case OpSetProfileField:
		switch m.Field {
		case FieldName:
			doc.Profile.Name = m.Value
		case FieldEmail:
			doc.Profile.Email = m.Value
		case FieldPhone:
			doc.Profile.Phone = m.Value
		case FieldLocation:
			doc.Profile.Location = m.Value
		case FieldSummary:
			doc.Profile.Summary = m.Value
		}

	case OpSetExperienceField:
		exp := experienceAt(doc, m.Index)
		switch m.Field {
		case FieldCompany:
			exp.Company = m.Value
		case FieldJobTitle:
			exp.JobTitle = m.Value
		case FieldDate:
			exp.Date = m.Value
		}

	case OpSetExperienceDescriptions:
		experienceAt(doc, m.Index).Descriptions = copyStrings(m.Values)

	case OpSetEducationField:
		edu := educationAt(doc, m.Index)
		switch m.Field {
		case FieldSchool:
			edu.School = m.Value
		case FieldDegree:
			edu.Degree = m.Value
		case FieldDate:
			edu.Date = m.Value
		case FieldGPA:
			edu.GPA = m.Value
		}

	case OpSetProjectField:
		prj := projectAt(doc, m.Index)
		switch m.Field {
		case FieldProject:
			prj.Project = m.Value
		case FieldDate:
			prj.Date = m.Value
		}

	case OpSetProjectDescriptions:
		projectAt(doc, m.Index).Descriptions = copyStrings(m.Values)

	case OpSetFeaturedSkill:
		for len(doc.Skills.FeaturedSkills) <= m.Index {
			doc.Skills.FeaturedSkills = append(doc.Skills.FeaturedSkills,
				domain.FeaturedSkill{Rating: domain.DefaultFeaturedSkillRating})
		}
		doc.Skills.FeaturedSkills[m.Index] = domain.FeaturedSkill{Skill: m.Value, Rating: m.Rating}

	case OpSetSkillsDescriptions:
		doc.Skills.Descriptions = copyStrings(m.Values)

	case OpAppendCustomDescriptions:
		doc.Custom.Descriptions = append(doc.Custom.Descriptions, m.Values...)
	}
}

// Index-addressed sections stay structurally complete: addressing an entry
// past the end grows the list with empty entries.

func experienceAt(doc *domain.ResumeDocument, idx int) *domain.WorkExperience {
	for len(doc.WorkExperiences) <= idx {
		doc.WorkExperiences = append(doc.WorkExperiences, domain.WorkExperience{Descriptions: []string{}})
	}
	return &doc.WorkExperiences[idx]
}

func educationAt(doc *domain.ResumeDocument, idx int) *domain.Education {
	for len(doc.Educations) <= idx {
		doc.Educations = append(doc.Educations, domain.Education{Descriptions: []string{}})
	}
	return &doc.Educations[idx]
}

func projectAt(doc *domain.ResumeDocument, idx int) *domain.Project {
	for len(doc.Projects) <= idx {
		doc.Projects = append(doc.Projects, domain.Project{Descriptions: []string{}})
	}
	return &doc.Projects[idx]
}

func clone(doc *domain.ResumeDocument) *domain.ResumeDocument {
	out := *doc

	out.WorkExperiences = make([]domain.WorkExperience, len(doc.WorkExperiences))
	for i, e := range doc.WorkExperiences {
		e.Descriptions = copyStrings(e.Descriptions)
		out.WorkExperiences[i] = e
	}

	out.Educations = make([]domain.Education, len(doc.Educations))
	for i, e := range doc.Educations {
		e.Descriptions = copyStrings(e.Descriptions)
		out.Educations[i] = e
	}

	out.Projects = make([]domain.Project, len(doc.Projects))
	for i, p := range doc.Projects {
		p.Descriptions = copyStrings(p.Descriptions)
		out.Projects[i] = p
	}

	out.Skills.FeaturedSkills = make([]domain.FeaturedSkill, len(doc.Skills.FeaturedSkills))
	copy(out.Skills.FeaturedSkills, doc.Skills.FeaturedSkills)
	out.Skills.Descriptions = copyStrings(doc.Skills.Descriptions)
	out.Custom.Descriptions = copyStrings(doc.Custom.Descriptions)

	return &out
}

// copyStrings preserves empty-but-present lists; a list section's
// descriptions never decay to absent.
func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
