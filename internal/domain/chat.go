package domain

// Turn roles. A conversation only ever contains these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversational roles the default provider understands.
const (
	ChatRoleGeneral  = "general"
	ChatRoleHR       = "hr"
	ChatRoleEducator = "educator"
)

// ChatTurn is a single message in a session. Immutable once appended.
type ChatTurn struct {
	Role    string `json:"role"` // user, assistant
	Content string `json:"content"`
}

// ExtractedSection is structured resume data recovered from an assistant
// reply. Transient: produced by the parser (or carried pre-parsed in the
// backend's resumeData envelope), consumed immediately by the normalizer,
// never persisted.
type ExtractedSection struct {
	Section string         `json:"section"` // profile, workExperience, educations, skills, projects, custom
	Fields  map[string]any `json:"fields"`
}

// ResumeData is the structured envelope a backend may return alongside the
// assistant text, with the extraction already parsed server-side.
type ResumeData struct {
	ExtractedData *ExtractedSection `json:"extractedData,omitempty"`
	NextQuestion  string            `json:"nextQuestion,omitempty"`
}

// BackendResponse is the response body shared by both chat providers.
type BackendResponse struct {
	AssistantMessage string      `json:"assistantMessage"`
	ResumeData       *ResumeData `json:"resumeData,omitempty"`
}

// SendMessageRequest drives one extraction turn.
type SendMessageRequest struct {
	Message       string `json:"message" binding:"required"`
	Role          string `json:"role,omitempty"`
	Model         string `json:"model,omitempty"`
	UseOpenRouter bool   `json:"useOpenRouter,omitempty"`
}

// SendMessageResponse reports the assistant turn produced by one extraction
// turn. Extracted is true when resume data was recovered and applied.
type SendMessageResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Extracted bool   `json:"extracted"`
}
