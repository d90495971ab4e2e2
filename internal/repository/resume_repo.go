package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chatfolio/chatfolio/internal/domain"
)

// ResumeRepository persists canonical resume documents, one per session key.
type ResumeRepository struct {
	db *DB
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db *DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

// Save writes the document for a session key
func (r *ResumeRepository) Save(key string, doc *domain.ResumeDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO resumes (key, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at
	`, key, string(data), time.Now())

	return err
}

// Load reads the document for a session key. A missing key returns
// (nil, nil); a stored value that does not decode returns an error.
func (r *ResumeRepository) Load(key string) (*domain.ResumeDocument, error) {
	var raw string
	err := r.db.QueryRow(`SELECT document FROM resumes WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	doc := &domain.ResumeDocument{}
	if err := json.Unmarshal([]byte(raw), doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return doc, nil
}

// Delete erases the persisted document for a session key
func (r *ResumeRepository) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM resumes WHERE key = ?`, key)
	return err
}
