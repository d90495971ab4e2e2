package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chatfolio/chatfolio/internal/domain"
)

// SessionRepository persists chat sessions. Each session key holds the full
// serialized turn sequence; every save replaces the previous value.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save writes the turn sequence for a session key
func (r *SessionRepository) Save(key string, turns []domain.ChatTurn) error {
	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to encode turns: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO chat_sessions (key, turns, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET turns = excluded.turns, updated_at = excluded.updated_at
	`, key, string(data), time.Now())

	return err
}

// Load reads the turn sequence for a session key. A missing key returns
// (nil, nil); a stored value that does not decode returns an error so the
// caller can fall back to default state.
func (r *SessionRepository) Load(key string) ([]domain.ChatTurn, error) {
	var raw string
	err := r.db.QueryRow(`SELECT turns FROM chat_sessions WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var turns []domain.ChatTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return nil, fmt.Errorf("failed to decode turns: %w", err)
	}
	if turns == nil {
		return nil, fmt.Errorf("stored turns are not a sequence")
	}

	return turns, nil
}

// Delete erases the persisted state for a session key
func (r *SessionRepository) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM chat_sessions WHERE key = ?`, key)
	return err
}
