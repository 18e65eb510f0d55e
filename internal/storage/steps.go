package storage

import (
	"database/sql"
	"fmt"
)

// StepRecord represents one narrated solve step in the database.
type StepRecord struct {
	StepID      int64
	SessionID   string
	Seq         int
	Target      string
	Kind        string
	Description string
	MovesText   string
	StateText   *string
}

// StepRepository provides CRUD operations for steps.
type StepRepository struct {
	db *DB
}

// NewStepRepository creates a new step repository.
func NewStepRepository(db *DB) *StepRepository {
	return &StepRepository{db: db}
}

// Create inserts a step and returns its ID.
func (r *StepRepository) Create(sessionID string, seq int, target, kind, description, movesText string, stateText *string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO steps (session_id, seq, target, kind, description, moves_text, state_text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, seq, target, kind, description, movesText, stateText)

	if err != nil {
		return 0, fmt.Errorf("failed to create step: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get step ID: %w", err)
	}

	return id, nil
}

// CreateBatch inserts a run of steps in one transaction.
func (r *StepRepository) CreateBatch(sessionID string, steps []StepRecord) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO steps (session_id, seq, target, kind, description, moves_text, state_text)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare step insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range steps {
			if _, err := stmt.Exec(sessionID, s.Seq, s.Target, s.Kind, s.Description, s.MovesText, s.StateText); err != nil {
				return fmt.Errorf("failed to insert step %d: %w", s.Seq, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all steps for a session in order.
func (r *StepRepository) GetBySession(sessionID string) ([]StepRecord, error) {
	rows, err := r.db.Query(`
		SELECT step_id, session_id, seq, target, kind, description, moves_text, state_text
		FROM steps
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var s StepRecord
		err := rows.Scan(&s.StepID, &s.SessionID, &s.Seq, &s.Target, &s.Kind, &s.Description, &s.MovesText, &s.StateText)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}

	return steps, rows.Err()
}

// CountBySession returns the number of steps recorded for a session.
func (r *StepRepository) CountBySession(sessionID string) (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM steps WHERE session_id = ?", sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count steps: %w", err)
	}
	return n, nil
}
