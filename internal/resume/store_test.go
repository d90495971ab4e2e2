package resume_test

import (
	"errors"
	"testing"

	"github.com/chatfolio/chatfolio/internal/domain"
	"github.com/chatfolio/chatfolio/internal/normalizer"
	"github.com/chatfolio/chatfolio/internal/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	docs    map[string]*domain.ResumeDocument
	saves   int
	saveErr error
	loadErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[string]*domain.ResumeDocument)}
}

func (r *fakeRepo) Save(key string, doc *domain.ResumeDocument) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *doc
	r.docs[key] = &copied
	return nil
}

func (r *fakeRepo) Load(key string) (*domain.ResumeDocument, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.docs[key], nil
}

func (r *fakeRepo) Delete(key string) error {
	delete(r.docs, key)
	return nil
}

func newStore(t *testing.T) (*resume.Store, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	return resume.NewStore(repo, zap.NewNop()), repo
}

func TestNewDocumentIsStructurallyComplete(t *testing.T) {
	doc := domain.NewResumeDocument()

	require.Len(t, doc.WorkExperiences, 1)
	require.Len(t, doc.Educations, 1)
	require.Len(t, doc.Projects, 1)
	require.NotEmpty(t, doc.Skills.FeaturedSkills)
	assert.NotNil(t, doc.Custom.Descriptions)
	for _, fs := range doc.Skills.FeaturedSkills {
		assert.Equal(t, domain.DefaultFeaturedSkillRating, fs.Rating)
	}
}

func TestApplyInOrder(t *testing.T) {
	store, _ := newStore(t)

	store.Apply("s1", []resume.Mutation{
		resume.SetProfileField(resume.FieldName, "first"),
		resume.SetProfileField(resume.FieldName, "second"),
	})

	assert.Equal(t, "second", store.Document("s1").Profile.Name)
}

func TestProfileNormalizeIsIdempotent(t *testing.T) {
	store, _ := newStore(t)
	fields := map[string]any{"name": "Asha", "email": "asha@x.com"}

	store.Apply("s1", normalizer.Normalize(normalizer.SectionProfile, fields))
	once := store.Document("s1")
	store.Apply("s1", normalizer.Normalize(normalizer.SectionProfile, fields))
	twice := store.Document("s1")

	assert.Equal(t, once, twice)
}

func TestCustomNormalizeAppendsEachTime(t *testing.T) {
	store, _ := newStore(t)
	fields := map[string]any{"languages": []any{"English", "Hindi"}}

	store.Apply("s1", normalizer.Normalize(normalizer.SectionCustom, fields))
	require.Len(t, store.Document("s1").Custom.Descriptions, 1)

	store.Apply("s1", normalizer.Normalize(normalizer.SectionCustom, fields))
	descs := store.Document("s1").Custom.Descriptions
	require.Len(t, descs, 2)
	assert.Equal(t, "Languages: English, Hindi", descs[0])
	assert.Equal(t, descs[0], descs[1])
}

func TestWorkExperienceDescriptionsReplace(t *testing.T) {
	store, _ := newStore(t)

	store.Apply("s1", []resume.Mutation{resume.SetExperienceDescriptions(0, []string{"old line"})})
	store.Apply("s1", []resume.Mutation{resume.SetExperienceDescriptions(0, []string{"new line"})})

	assert.Equal(t, []string{"new line"}, store.Document("s1").WorkExperiences[0].Descriptions)
}

func TestFeaturedSkillSlotsGrow(t *testing.T) {
	store, _ := newStore(t)

	store.Apply("s1", []resume.Mutation{resume.SetFeaturedSkill(9, "Go", 5)})

	skills := store.Document("s1").Skills.FeaturedSkills
	require.Len(t, skills, 10)
	assert.Equal(t, domain.FeaturedSkill{Skill: "Go", Rating: 5}, skills[9])
	// padding keeps the default rating
	assert.Equal(t, domain.DefaultFeaturedSkillRating, skills[8].Rating)
}

func TestDocumentReturnsSnapshot(t *testing.T) {
	store, _ := newStore(t)
	store.Apply("s1", []resume.Mutation{resume.AppendCustomDescriptions([]string{"a"})})

	snap := store.Document("s1")
	snap.Custom.Descriptions[0] = "mutated"
	snap.Profile.Name = "mutated"

	fresh := store.Document("s1")
	assert.Equal(t, "a", fresh.Custom.Descriptions[0])
	assert.Empty(t, fresh.Profile.Name)
}

func TestReset(t *testing.T) {
	store, repo := newStore(t)
	store.Apply("s1", []resume.Mutation{resume.SetProfileField(resume.FieldName, "Asha")})

	store.Reset("s1")

	assert.Equal(t, *domain.NewResumeDocument(), store.Document("s1"))
	_, ok := repo.docs["s1"]
	assert.False(t, ok, "persisted document should be erased")
}

func TestPersistenceFailuresAreTolerated(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("disk full")
	store := resume.NewStore(repo, zap.NewNop())

	store.Apply("s1", []resume.Mutation{resume.SetProfileField(resume.FieldName, "Asha")})

	// in-memory state stays authoritative
	assert.Equal(t, "Asha", store.Document("s1").Profile.Name)
}

func TestLoadFailureStartsFresh(t *testing.T) {
	repo := newFakeRepo()
	repo.loadErr = errors.New("corrupt row")
	store := resume.NewStore(repo, zap.NewNop())

	assert.Equal(t, *domain.NewResumeDocument(), store.Document("s1"))
}

func TestLoadsPersistedDocument(t *testing.T) {
	repo := newFakeRepo()
	doc := domain.NewResumeDocument()
	doc.Profile.Name = "Asha"
	repo.docs["s1"] = doc

	store := resume.NewStore(repo, zap.NewNop())
	assert.Equal(t, "Asha", store.Document("s1").Profile.Name)
}
