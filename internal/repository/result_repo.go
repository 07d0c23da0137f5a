package repository

import (
	"fmt"

	"wordingo/internal/database"
	"wordingo/internal/models"
)

// ResultRepository handles database operations for per-round results
type ResultRepository struct {
	db *database.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *database.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// AppendResult records the outcome of a single round
func (r *ResultRepository) AppendResult(sessionID, gameID int64, isCorrect bool, timeTakenMs int, difficulty string) error {
	query := `
		INSERT INTO game_results (session_id, game_id, is_correct, time_taken_ms, difficulty)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, sessionID, gameID, isCorrect, timeTakenMs, difficulty); err != nil {
		return fmt.Errorf("failed to append result for session %d: %w", sessionID, err)
	}
	return nil
}

// GetSessionResults retrieves all results for a session in play order
func (r *ResultRepository) GetSessionResults(sessionID int64) ([]models.GameResult, error) {
	query := `
		SELECT id, session_id, game_id, is_correct, time_taken_ms, difficulty
		FROM game_results
		WHERE session_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results for session %d: %w", sessionID, err)
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var result models.GameResult
		err := rows.Scan(
			&result.ID,
			&result.SessionID,
			&result.GameID,
			&result.IsCorrect,
			&result.TimeTakenMs,
			&result.Difficulty,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
