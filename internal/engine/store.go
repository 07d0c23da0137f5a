package engine

import (
	"time"

	"wordingo/internal/models"
)

// Store is the persistence collaborator the engine depends on. The real
// implementation lives in internal/repository; tests supply an in-memory
// fake. Errors from any method propagate to the engine's caller unchanged.
type Store interface {
	// CreateSession persists a new session row with zero score/streak and
	// returns its identifier.
	CreateSession(start time.Time) (int64, error)

	// UpdateSessionProgress persists the current round, streak and score.
	UpdateSessionProgress(sessionID int64, round, streak, score int) error

	// SetSessionEndTime records when a session finished.
	SetSessionEndTime(sessionID int64, end time.Time) error

	// GetGameTypes returns all configured game types.
	GetGameTypes() ([]models.GameType, error)

	// GetQuestions returns the word-bank entries for a game type at one
	// difficulty level. An empty slice is a valid response.
	GetQuestions(gameType string, difficulty int) ([]models.WordBankItem, error)

	// AppendResult writes one per-challenge result record. Append-only.
	AppendResult(sessionID, gameID int64, isCorrect bool, timeTakenMs int, difficulty string) error

	// GetSessionResults returns all result records for a session.
	GetSessionResults(sessionID int64) ([]models.GameResult, error)

	// GetUserStats reads the aggregate user statistics.
	GetUserStats() (*models.UserStats, error)

	// UpdateUserStats writes back the total-games and longest-streak
	// aggregates.
	UpdateUserStats(totalGames, longestStreak int) error

	// TouchDailyStreak applies the daily-streak calendar rules for a play
	// happening at now: no-op if already played today, +1 if the last play
	// was yesterday, reset to 1 otherwise.
	TouchDailyStreak(now time.Time) error
}
