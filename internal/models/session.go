package models

import "time"

// GameSession is a persisted play session row
type GameSession struct {
	ID        int64      `json:"id"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Score     int        `json:"score"`
	Streak    int        `json:"streak"`
	Round     int        `json:"round"`
}

// GameResult is one answered challenge within a session. Rows are
// append-only and never mutated after creation.
type GameResult struct {
	ID          int64  `json:"id"`
	SessionID   int64  `json:"sessionId"`
	GameID      int64  `json:"gameId"`
	IsCorrect   bool   `json:"isCorrect"`
	TimeTakenMs int    `json:"timeTakenMs"`
	Difficulty  string `json:"difficulty"`
}

// UserStats is the singleton aggregate statistics row
type UserStats struct {
	TotalGames    int        `json:"totalGames"`
	LongestStreak int        `json:"longestStreak"`
	LastPlayed    *time.Time `json:"lastPlayed,omitempty"`
	DailyStreak   int        `json:"dailyStreak"`
}
