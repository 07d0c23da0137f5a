package repository

import (
	"time"

	"wordingo/internal/database"
	"wordingo/internal/models"
)

// Store bundles the repositories behind the persistence surface the game
// engine depends on. One Store is safe to share between engines; each
// repository is stateless.
type Store struct {
	Sessions *SessionRepository
	Catalog  *CatalogRepository
	WordBank *WordBankRepository
	Results  *ResultRepository
	Stats    *StatsRepository
}

// NewStore creates repositories over a shared database connection
func NewStore(db *database.DB) *Store {
	return &Store{
		Sessions: NewSessionRepository(db),
		Catalog:  NewCatalogRepository(db),
		WordBank: NewWordBankRepository(db),
		Results:  NewResultRepository(db),
		Stats:    NewStatsRepository(db),
	}
}

func (s *Store) CreateSession(start time.Time) (int64, error) {
	return s.Sessions.CreateSession(start)
}

func (s *Store) UpdateSessionProgress(sessionID int64, round, streak, score int) error {
	return s.Sessions.UpdateSessionProgress(sessionID, round, streak, score)
}

func (s *Store) SetSessionEndTime(sessionID int64, end time.Time) error {
	return s.Sessions.SetSessionEndTime(sessionID, end)
}

func (s *Store) GetGameTypes() ([]models.GameType, error) {
	return s.Catalog.GetGameTypes()
}

func (s *Store) GetQuestions(gameType string, difficulty int) ([]models.WordBankItem, error) {
	return s.WordBank.GetQuestions(gameType, difficulty)
}

func (s *Store) AppendResult(sessionID, gameID int64, isCorrect bool, timeTakenMs int, difficulty string) error {
	return s.Results.AppendResult(sessionID, gameID, isCorrect, timeTakenMs, difficulty)
}

func (s *Store) GetSessionResults(sessionID int64) ([]models.GameResult, error) {
	return s.Results.GetSessionResults(sessionID)
}

func (s *Store) GetUserStats() (*models.UserStats, error) {
	return s.Stats.GetUserStats()
}

func (s *Store) UpdateUserStats(totalGames, longestStreak int) error {
	return s.Stats.UpdateUserStats(totalGames, longestStreak)
}

func (s *Store) TouchDailyStreak(now time.Time) error {
	return s.Stats.TouchDailyStreak(now)
}
