package auth

import (
	"database/sql"
	"fmt"
)

// SQLiteStore implements [Store] on top of the sessions table.
//
// The table holds at most one row (id = 1); Save replaces it wholesale inside
// a transaction so identity and token are never observed half-written.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new [SQLiteStore] with the given database connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists the session, replacing any previous one.
func (s *SQLiteStore) Save(session Session) error {
	if !session.Valid() {
		return fmt.Errorf("refusing to persist invalid session for user %q", session.UserID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	query := `
		INSERT INTO sessions (id, user_id, display_name, role, token) VALUES (1, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(query, session.UserID, session.DisplayName, string(session.Role), session.Token); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}

// Current returns the persisted session, or nil when there is none or the
// stored row does not decode to a valid session.
func (s *SQLiteStore) Current() *Session {
	var (
		userID      string
		displayName string
		role        string
		token       string
	)

	query := `
		SELECT user_id, display_name, role, token FROM sessions WHERE id = 1
	`
	err := s.db.QueryRow(query).Scan(&userID, &displayName, &role, &token)
	if err != nil {
		return nil
	}

	session := Session{
		UserID:      userID,
		DisplayName: displayName,
		Role:        Role(role),
		Token:       token,
	}
	if session.UserID == "" || session.Token == "" {
		return nil
	}

	return &session
}

// Token returns the persisted bearer token, or empty when there is none.
//
// Unlike Current, a row with an unknown role still yields its token: the
// server decides what the token is good for.
func (s *SQLiteStore) Token() string {
	var token string
	if err := s.db.QueryRow("SELECT token FROM sessions WHERE id = 1").Scan(&token); err != nil {
		return ""
	}
	return token
}

// Clear removes all session data.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
