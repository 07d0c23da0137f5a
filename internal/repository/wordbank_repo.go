package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"wordingo/internal/database"
	"wordingo/internal/models"
)

// WordBankRepository handles database operations for puzzle content
type WordBankRepository struct {
	db *database.DB
}

// NewWordBankRepository creates a new word bank repository
func NewWordBankRepository(db *database.DB) *WordBankRepository {
	return &WordBankRepository{db: db}
}

// GetQuestions retrieves all questions for a game type at a difficulty level
func (r *WordBankRepository) GetQuestions(gameType string, difficulty int) ([]models.WordBankItem, error) {
	query := `
		SELECT id, game_type, question, answer, options, difficulty
		FROM word_bank
		WHERE game_type = ? AND difficulty = ?
	`

	rows, err := r.db.Query(query, gameType, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for %s: %w", gameType, err)
	}
	defer rows.Close()

	var items []models.WordBankItem
	for rows.Next() {
		var item models.WordBankItem
		var options sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.GameType,
			&item.Question,
			&item.Answer,
			&options,
			&item.Difficulty,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		if options.Valid && options.String != "" {
			if err := json.Unmarshal([]byte(options.String), &item.Options); err != nil {
				return nil, fmt.Errorf("failed to decode options for question %d: %w", item.ID, err)
			}
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
