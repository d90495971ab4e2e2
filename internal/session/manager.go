// Package session owns the ordered chat turn log, one log per session key.
package session

import (
	"sync"

	"github.com/chatfolio/chatfolio/internal/domain"
	"go.uber.org/zap"
)

// Repository is the persistence contract the manager needs.
type Repository interface {
	Save(key string, turns []domain.ChatTurn) error
	Load(key string) ([]domain.ChatTurn, error)
	Delete(key string) error
}

// Manager keeps the turn log in memory and mirrors every mutation to
// storage. In-memory state stays authoritative when storage misbehaves:
// persistence failures are logged and tolerated, never surfaced to the
// conversation.
type Manager struct {
	repo     Repository
	logger   *zap.Logger
	greeting string

	mu       sync.Mutex
	sessions map[string][]domain.ChatTurn
}

// NewManager creates a new session manager
func NewManager(repo Repository, logger *zap.Logger, greeting string) *Manager {
	return &Manager{
		repo:     repo,
		logger:   logger,
		greeting: greeting,
		sessions: make(map[string][]domain.ChatTurn),
	}
}

// Turns returns a copy of the session's turn sequence, restoring persisted
// state on first access. Absent or malformed stored data falls back to the
// single default greeting turn.
func (m *Manager) Turns(key string) []domain.ChatTurn {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ChatTurn(nil), m.turns(key)...)
}

// Append adds one turn and persists the updated sequence. It returns a copy
// of the sequence including the new turn.
func (m *Manager) Append(key string, turn domain.ChatTurn) []domain.ChatTurn {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := append(m.turns(key), turn)
	m.sessions[key] = turns

	if err := m.repo.Save(key, turns); err != nil {
		m.logger.Warn("failed to persist session", zap.String("key", key), zap.Error(err))
	}

	return append([]domain.ChatTurn(nil), turns...)
}

// Clear removes all turns and erases persisted state. The resume document
// is untouched; a full reset is the orchestrator's job.
func (m *Manager) Clear(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[key] = []domain.ChatTurn{}
	if err := m.repo.Delete(key); err != nil {
		m.logger.Warn("failed to erase persisted session", zap.String("key", key), zap.Error(err))
	}
}

// Forget drops the in-memory log so the next access restores from storage
// (or greets afresh).
func (m *Manager) Forget(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
}

// turns returns the live sequence for a key. Callers must hold m.mu.
func (m *Manager) turns(key string) []domain.ChatTurn {
	if turns, ok := m.sessions[key]; ok {
		return turns
	}

	turns, err := m.repo.Load(key)
	if err != nil {
		m.logger.Warn("failed to restore session, starting fresh",
			zap.String("key", key), zap.Error(err))
		turns = nil
	}
	if turns == nil {
		turns = []domain.ChatTurn{{Role: domain.RoleAssistant, Content: m.greeting}}
	}

	m.sessions[key] = turns
	return turns
}
