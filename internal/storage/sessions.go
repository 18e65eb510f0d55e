package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a recorded solve session in the database.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	ScrambleText *string
	StartState   *string
	EndState     *string
	Complete     *bool
	Notes        *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(scramble, startState, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr, statePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if startState != "" {
		statePtr = &startState
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text, start_state, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr, statePtr, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as finished with its final state and outcome.
func (r *SessionRepository) End(sessionID, endState string, complete bool) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, end_state = ?, complete = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), endState, boolToInt(complete), sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	return nil
}

// Get retrieves a session by ID. Returns (nil, nil) if it does not exist.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var complete sql.NullInt64

	err := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, scramble_text, start_state, end_state, complete, notes
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(
		&s.SessionID, &startedAtStr, &endedAtStr,
		&s.ScrambleText, &s.StartState, &s.EndState,
		&complete, &s.Notes,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	if complete.Valid {
		b := complete.Int64 != 0
		s.Complete = &b
	}

	return &s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, scramble_text, start_state, end_state, complete, notes
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var startedAtStr string
		var endedAtStr sql.NullString
		var complete sql.NullInt64

		err := rows.Scan(
			&s.SessionID, &startedAtStr, &endedAtStr,
			&s.ScrambleText, &s.StartState, &s.EndState,
			&complete, &s.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
		if endedAtStr.Valid {
			t, _ := time.Parse(time.RFC3339, endedAtStr.String)
			s.EndedAt = &t
		}
		if complete.Valid {
			b := complete.Int64 != 0
			s.Complete = &b
		}

		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
