package repository

import (
	"database/sql"
	"fmt"
	"time"

	"wordingo/internal/database"
	"wordingo/internal/models"
)

// StatsRepository handles database operations for lifetime player stats.
// Stats live in a single row; the engine is single-player.
type StatsRepository struct {
	db *database.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

const statsRowID = 1

// GetUserStats retrieves the lifetime stats row
func (r *StatsRepository) GetUserStats() (*models.UserStats, error) {
	query := `
		SELECT total_games, longest_streak, last_played, daily_streak
		FROM user_stats
		WHERE id = ?
	`

	stats := &models.UserStats{}
	var lastPlayed sql.NullTime

	err := r.db.QueryRow(query, statsRowID).Scan(
		&stats.TotalGames,
		&stats.LongestStreak,
		&lastPlayed,
		&stats.DailyStreak,
	)
	if err == sql.ErrNoRows {
		return &models.UserStats{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	if lastPlayed.Valid {
		stats.LastPlayed = &lastPlayed.Time
	}

	return stats, nil
}

// UpdateUserStats persists the lifetime totals
func (r *StatsRepository) UpdateUserStats(totalGames, longestStreak int) error {
	query := `
		UPDATE user_stats
		SET total_games = ?, longest_streak = ?
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, totalGames, longestStreak, statsRowID); err != nil {
		return fmt.Errorf("failed to update user stats: %w", err)
	}
	return nil
}

// TouchDailyStreak advances the daily play streak for a session started at
// now. Playing again on the same calendar day leaves the streak alone,
// playing on the following day extends it, and any gap resets it to 1.
func (r *StatsRepository) TouchDailyStreak(now time.Time) error {
	stats, err := r.GetUserStats()
	if err != nil {
		return err
	}

	streak := 1
	if stats.LastPlayed != nil {
		last := *stats.LastPlayed
		switch {
		case sameDay(last, now):
			return nil
		case sameDay(last.AddDate(0, 0, 1), now):
			streak = stats.DailyStreak + 1
		}
	}

	query := `
		UPDATE user_stats
		SET daily_streak = ?, last_played = ?
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, streak, now, statsRowID); err != nil {
		return fmt.Errorf("failed to update daily streak: %w", err)
	}
	return nil
}

// sameDay reports whether two instants fall on the same local calendar day.
// Drivers may hand back stored timestamps in UTC, so both sides are
// normalized before comparing.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
