package engine

import "fmt"

// SessionSummary aggregates the persisted results of one session. It is
// recomputed from the store on every call; with no new results the output
// is identical.
type SessionSummary struct {
	TotalGames       int             `json:"totalGames"`
	CorrectAnswers   int             `json:"correctAnswers"`
	IncorrectAnswers int             `json:"incorrectAnswers"`
	AverageTimeMs    float64         `json:"averageTimeMs"`
	GameBreakdown    []GameBreakdown `json:"gameBreakdown"`
}

// GameBreakdown is the per-game-type slice of a summary. Types with zero
// plays are omitted.
type GameBreakdown struct {
	Name          string  `json:"name"`
	Played        int     `json:"played"`
	Correct       int     `json:"correct"`
	AverageTimeMs float64 `json:"averageTimeMs"`
}

// SessionSummary reads all result records for a session plus the game
// catalog and computes totals, the correct/incorrect partition, the mean
// response time, and a per-game-type breakdown in first-played order.
func (e *Engine) SessionSummary(sessionID int64) (*SessionSummary, error) {
	results, err := e.store.GetSessionResults(sessionID)
	if err != nil {
		return nil, err
	}
	catalog, err := e.store.GetGameTypes()
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(catalog))
	for _, g := range catalog {
		names[g.ID] = g.Name
	}

	sum := &SessionSummary{TotalGames: len(results)}
	perGame := make(map[int64]*GameBreakdown)
	perGameMs := make(map[int64]int)
	var order []int64
	var totalMs int

	for _, r := range results {
		totalMs += r.TimeTakenMs
		if r.IsCorrect {
			sum.CorrectAnswers++
		} else {
			sum.IncorrectAnswers++
		}

		b := perGame[r.GameID]
		if b == nil {
			name := names[r.GameID]
			if name == "" {
				name = fmt.Sprintf("game %d", r.GameID)
			}
			b = &GameBreakdown{Name: name}
			perGame[r.GameID] = b
			order = append(order, r.GameID)
		}
		b.Played++
		if r.IsCorrect {
			b.Correct++
		}
		perGameMs[r.GameID] += r.TimeTakenMs
	}

	if len(results) > 0 {
		sum.AverageTimeMs = float64(totalMs) / float64(len(results))
	}
	for _, id := range order {
		b := perGame[id]
		b.AverageTimeMs = float64(perGameMs[id]) / float64(b.Played)
		sum.GameBreakdown = append(sum.GameBreakdown, *b)
	}
	return sum, nil
}
