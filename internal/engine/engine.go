// Package engine orchestrates one word-puzzle play session: selecting the
// next challenge, evaluating answers, tracking streak and score, and
// compiling end-of-session summaries. Persistence is delegated to the
// Store collaborator.
package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"wordingo/internal/models"
)

const (
	// maxDifficulty caps the word-bank difficulty; rounds beyond it reuse
	// the hardest content.
	maxDifficulty = 3

	// difficultyPoints is the base score per difficulty level for
	// question-bank challenges.
	difficultyPoints = 50
)

// Session is the in-memory state of one continuous play attempt. It stays
// active until the first wrong answer or an explicit end.
type Session struct {
	ID        int64
	Round     int
	Streak    int
	Score     int
	StartedAt time.Time
	Active    bool

	// Types is the set of game types selectable in this session, fetched
	// once at session start.
	Types []models.GameType

	// played tracks which game types have been presented in the current
	// round. Cleared at round rollover.
	played map[string]bool
}

// Challenge is the single puzzle currently in front of the player. It is
// replaced, never mutated, each time a new challenge is selected.
type Challenge struct {
	GameType   models.GameType
	Question   string
	Answer     string
	Options    []string
	Difficulty int

	// Wordle-only fields. Mode determines the guess budget and whether a
	// scrambled-letter clue is shown.
	Mode       Mode
	MaxGuesses int
	Clue       string

	StartedAt time.Time
}

// points returns the base score value for this challenge.
func (c *Challenge) points() int {
	if c.GameType.Type == TypeWordle {
		return wordleModes[c.Mode].Points
	}
	return c.Difficulty * difficultyPoints
}

// difficultyTag is the label stored with each result record: the wordle
// mode name, or the numeric difficulty level.
func (c *Challenge) difficultyTag() string {
	if c.GameType.Type == TypeWordle {
		return string(c.Mode)
	}
	return strconv.Itoa(c.Difficulty)
}

// AnswerResult reports the outcome of one submitted answer.
type AnswerResult struct {
	IsCorrect     bool
	CorrectAnswer string
	TimeTaken     time.Duration
	Points        int
}

// Engine owns the lifecycle of one play session at a time. It is not safe
// for concurrent use; the caller must serialize calls against the same
// engine.
type Engine struct {
	store Store
	rng   *rand.Rand
	now   func() time.Time

	session   *Session
	challenge *Challenge
}

// New creates an engine backed by store. rng and now may be nil, in which
// case a time-seeded source and time.Now are used; tests inject both for
// deterministic behavior.
func New(store Store, rng *rand.Rand, now func() time.Time) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{store: store, rng: rng, now: now}
}

// StartNewSession begins a fresh session, discarding any previous
// in-memory session without persisting it. typeFilter restricts the
// catalog to the named game types; nil or empty means all types.
func (e *Engine) StartNewSession(typeFilter []string) (*Session, error) {
	catalog, err := e.store.GetGameTypes()
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, &ConfigurationError{Reason: "game catalog is empty"}
	}

	if len(typeFilter) > 0 {
		allowed := make(map[string]bool, len(typeFilter))
		for _, t := range typeFilter {
			allowed[t] = true
		}
		var filtered []models.GameType
		for _, g := range catalog {
			if allowed[g.Type] {
				filtered = append(filtered, g)
			}
		}
		if len(filtered) == 0 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("no game types match filter %v", typeFilter)}
		}
		catalog = filtered
	}

	start := e.now()
	id, err := e.store.CreateSession(start)
	if err != nil {
		return nil, err
	}
	if err := e.store.TouchDailyStreak(start); err != nil {
		return nil, err
	}

	e.session = &Session{
		ID:        id,
		Round:     1,
		StartedAt: start,
		Active:    true,
		Types:     catalog,
		played:    make(map[string]bool),
	}
	e.challenge = nil
	return e.session, nil
}

// NextChallenge selects the next puzzle for the active session. It returns
// nil with no error when there is no active session or no content is
// available for the remaining game types.
func (e *Engine) NextChallenge() (*Challenge, error) {
	s := e.session
	if s == nil || !s.Active {
		return nil, nil
	}

	// Round rollover: every available type has been presented once. The
	// new round number is persisted before the in-memory state moves on.
	if len(s.played) >= len(s.Types) {
		next := s.Round + 1
		if err := e.store.UpdateSessionProgress(s.ID, next, s.Streak, s.Score); err != nil {
			return nil, err
		}
		s.Round = next
		s.played = make(map[string]bool)
	}

	var remaining []models.GameType
	for _, g := range s.Types {
		if !s.played[g.Type] {
			remaining = append(remaining, g)
		}
	}
	if len(remaining) == 0 {
		return nil, nil
	}
	gt := remaining[e.rng.Intn(len(remaining))]

	difficulty := s.Round
	if difficulty > maxDifficulty {
		difficulty = maxDifficulty
	}

	var ch *Challenge
	if gt.Type == TypeWordle {
		ch = e.buildWordleChallenge(gt)
	} else {
		var err error
		ch, err = e.buildBankChallenge(gt, difficulty)
		if err != nil {
			return nil, err
		}
		if ch == nil {
			return nil, nil
		}
	}

	s.played[gt.Type] = true
	ch.StartedAt = e.now()
	e.challenge = ch
	return ch, nil
}

// buildBankChallenge draws a random question for the given type from the
// word bank, falling back to difficulty 1 when the requested level has no
// content. Returns nil when the bank is empty at both levels.
func (e *Engine) buildBankChallenge(gt models.GameType, difficulty int) (*Challenge, error) {
	items, err := e.store.GetQuestions(gt.Type, difficulty)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && difficulty != 1 {
		difficulty = 1
		items, err = e.store.GetQuestions(gt.Type, difficulty)
		if err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, nil
	}

	item := items[e.rng.Intn(len(items))]
	return &Challenge{
		GameType:   gt,
		Question:   item.Question,
		Answer:     item.Answer,
		Options:    Shuffle(e.rng, item.Options),
		Difficulty: difficulty,
	}, nil
}

// SubmitAnswer evaluates the answer to the active challenge, records the
// result, and updates streak/score or ends the session. In-memory state is
// only updated after the corresponding store write succeeds.
func (e *Engine) SubmitAnswer(raw string) (*AnswerResult, error) {
	s, ch := e.session, e.challenge
	if s == nil || !s.Active || ch == nil {
		return nil, &InvalidStateError{Op: "SubmitAnswer"}
	}

	elapsed := e.now().Sub(ch.StartedAt)
	correct := ValidateAnswer(ch.GameType.Type, raw, ch.Answer)

	points := 0
	if correct {
		points = ch.points()
	}

	if err := e.store.AppendResult(s.ID, ch.GameType.ID, correct, int(elapsed.Milliseconds()), ch.difficultyTag()); err != nil {
		return nil, err
	}

	res := &AnswerResult{
		IsCorrect:     correct,
		CorrectAnswer: ch.Answer,
		TimeTaken:     elapsed,
		Points:        points,
	}

	if correct {
		if err := e.store.UpdateSessionProgress(s.ID, s.Round, s.Streak+1, s.Score+points); err != nil {
			return nil, err
		}
		s.Streak++
		s.Score += points
		// The caller must request the next challenge before submitting
		// again.
		e.challenge = nil
		return res, nil
	}

	// A wrong answer ends the session. The challenge is left in place for
	// the result screen.
	if err := e.store.SetSessionEndTime(s.ID, e.now()); err != nil {
		return nil, err
	}
	if err := e.applyAggregates(s.Streak); err != nil {
		return nil, err
	}
	s.Active = false
	return res, nil
}

// applyAggregates folds a finished session's streak into the aggregate
// user statistics. total_games accumulates by streak length, matching the
// shipped behavior of the app.
func (e *Engine) applyAggregates(streak int) error {
	stats, err := e.store.GetUserStats()
	if err != nil {
		return err
	}
	longest := stats.LongestStreak
	if streak > longest {
		longest = streak
	}
	return e.store.UpdateUserStats(stats.TotalGames+streak, longest)
}

// EndSession terminates the current session without an incorrect answer,
// applying the same aggregate-statistics update as a session-ending wrong
// answer. It is a no-op when no session is active.
func (e *Engine) EndSession() error {
	s := e.session
	if s == nil {
		return nil
	}
	if !s.Active {
		// Already ended by a wrong answer; the aggregates are settled.
		e.session = nil
		e.challenge = nil
		return nil
	}

	if err := e.store.SetSessionEndTime(s.ID, e.now()); err != nil {
		return err
	}
	if err := e.applyAggregates(s.Streak); err != nil {
		return err
	}
	s.Active = false
	e.session = nil
	e.challenge = nil
	return nil
}

// CleanupSession drops the in-memory session and challenge without any
// store writes. Call after the summary has been read to prevent stale
// reads from CurrentSession.
func (e *Engine) CleanupSession() {
	e.session = nil
	e.challenge = nil
}

// CurrentSession returns the in-memory session, or nil.
func (e *Engine) CurrentSession() *Session {
	return e.session
}

// CurrentChallenge returns the challenge in front of the player, or nil.
func (e *Engine) CurrentChallenge() *Challenge {
	return e.challenge
}
