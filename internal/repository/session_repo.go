package repository

import (
	"database/sql"
	"fmt"
	"time"

	"wordingo/internal/database"
	"wordingo/internal/models"
)

// SessionRepository handles database operations for play sessions
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession inserts a new session row and returns its ID
func (r *SessionRepository) CreateSession(start time.Time) (int64, error) {
	query := `
		INSERT INTO sessions (start_time, score, streak, round)
		VALUES (?, 0, 0, 1)
	`
	id, err := r.db.ExecReturningID(query, start)
	if err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// UpdateSessionProgress persists the session's round, streak and score
func (r *SessionRepository) UpdateSessionProgress(sessionID int64, round, streak, score int) error {
	query := `
		UPDATE sessions
		SET round = ?, streak = ?, score = ?
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, round, streak, score, sessionID); err != nil {
		return fmt.Errorf("failed to update session %d: %w", sessionID, err)
	}
	return nil
}

// SetSessionEndTime marks a session as finished
func (r *SessionRepository) SetSessionEndTime(sessionID int64, end time.Time) error {
	query := "UPDATE sessions SET end_time = ? WHERE id = ?"
	if _, err := r.db.Exec(query, end, sessionID); err != nil {
		return fmt.Errorf("failed to end session %d: %w", sessionID, err)
	}
	return nil
}

// GetSessionByID retrieves a session by ID, or nil if it does not exist
func (r *SessionRepository) GetSessionByID(sessionID int64) (*models.GameSession, error) {
	query := `
		SELECT id, start_time, end_time, score, streak, round
		FROM sessions
		WHERE id = ?
	`

	session := &models.GameSession{}
	var endTime sql.NullTime

	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.StartTime,
		&endTime,
		&session.Score,
		&session.Streak,
		&session.Round,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %d: %w", sessionID, err)
	}

	if endTime.Valid {
		session.EndTime = &endTime.Time
	}

	return session, nil
}
