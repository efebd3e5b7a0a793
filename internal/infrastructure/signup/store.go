package signup

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/shopwise/backend/internal/domain"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS signup_profiles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT NOT NULL,
    email TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    organization TEXT NOT NULL,
    major TEXT NOT NULL,
    university TEXT NOT NULL,
    location TEXT NOT NULL,
    purpose_choices TEXT NOT NULL DEFAULT '[]',
    purpose_text TEXT,
    terms_accepted INTEGER NOT NULL DEFAULT 0,
    privacy_accepted INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const insertSQL = `
INSERT INTO signup_profiles (
    full_name, email, password_hash, organization,
    major, university, location, purpose_choices,
    purpose_text, terms_accepted, privacy_accepted
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Store persists signup profiles in SQLite
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the signup database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open signup database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize signup schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save inserts one profile and returns its assigned id
func (s *Store) Save(ctx context.Context, profile *domain.SignupProfile) (int64, error) {
	if profile == nil {
		return 0, domain.ErrInvalidRequest
	}

	choices, err := json.Marshal(profile.PurposeChoices)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrSignupFailed, err)
	}

	result, err := s.db.ExecContext(ctx, insertSQL,
		profile.FullName,
		profile.Email,
		profile.PasswordHash,
		profile.Organization,
		profile.Major,
		profile.University,
		profile.Location,
		string(choices),
		profile.PurposeText,
		profile.TermsAccepted,
		profile.PrivacyAccepted,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrSignupFailed, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrSignupFailed, err)
	}
	return id, nil
}

// Count returns the number of stored profiles (for diagnostics)
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM signup_profiles").Scan(&count)
	return count, err
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}
