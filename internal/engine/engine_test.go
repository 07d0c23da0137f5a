package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"wordingo/internal/models"
	"wordingo/internal/words"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	catalog   []models.GameType
	questions map[string]map[int][]models.WordBankItem

	sessions map[int64]*models.GameSession
	results  []models.GameResult
	stats    models.UserStats
	nextID   int64

	questionCalls []string // "<type>:<difficulty>" in call order
	dailyTouches  int

	appendErr   error
	progressErr error
}

func newFakeStore(catalog ...models.GameType) *fakeStore {
	return &fakeStore{
		catalog:   catalog,
		questions: make(map[string]map[int][]models.WordBankItem),
		sessions:  make(map[int64]*models.GameSession),
	}
}

func (f *fakeStore) addQuestion(gameType string, difficulty int, question, answer string, options ...string) {
	if f.questions[gameType] == nil {
		f.questions[gameType] = make(map[int][]models.WordBankItem)
	}
	f.questions[gameType][difficulty] = append(f.questions[gameType][difficulty], models.WordBankItem{
		ID:         int64(len(f.questions[gameType][difficulty]) + 1),
		GameType:   gameType,
		Question:   question,
		Answer:     answer,
		Options:    options,
		Difficulty: difficulty,
	})
}

func (f *fakeStore) CreateSession(start time.Time) (int64, error) {
	f.nextID++
	f.sessions[f.nextID] = &models.GameSession{ID: f.nextID, StartTime: start, Round: 1}
	return f.nextID, nil
}

func (f *fakeStore) UpdateSessionProgress(sessionID int64, round, streak, score int) error {
	if f.progressErr != nil {
		return f.progressErr
	}
	s := f.sessions[sessionID]
	s.Round, s.Streak, s.Score = round, streak, score
	return nil
}

func (f *fakeStore) SetSessionEndTime(sessionID int64, end time.Time) error {
	t := end
	f.sessions[sessionID].EndTime = &t
	return nil
}

func (f *fakeStore) GetGameTypes() ([]models.GameType, error) {
	return f.catalog, nil
}

func (f *fakeStore) GetQuestions(gameType string, difficulty int) ([]models.WordBankItem, error) {
	f.questionCalls = append(f.questionCalls, fmt.Sprintf("%s:%d", gameType, difficulty))
	return f.questions[gameType][difficulty], nil
}

func (f *fakeStore) AppendResult(sessionID, gameID int64, isCorrect bool, timeTakenMs int, difficulty string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.results = append(f.results, models.GameResult{
		ID:          int64(len(f.results) + 1),
		SessionID:   sessionID,
		GameID:      gameID,
		IsCorrect:   isCorrect,
		TimeTakenMs: timeTakenMs,
		Difficulty:  difficulty,
	})
	return nil
}

func (f *fakeStore) GetSessionResults(sessionID int64) ([]models.GameResult, error) {
	var out []models.GameResult
	for _, r := range f.results {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetUserStats() (*models.UserStats, error) {
	stats := f.stats
	return &stats, nil
}

func (f *fakeStore) UpdateUserStats(totalGames, longestStreak int) error {
	f.stats.TotalGames = totalGames
	f.stats.LongestStreak = longestStreak
	return nil
}

func (f *fakeStore) TouchDailyStreak(now time.Time) error {
	f.dailyTouches++
	return nil
}

func textCatalog() []models.GameType {
	return []models.GameType{
		{ID: 1, Name: "Anagram Solver", Type: "anagram"},
		{ID: 2, Name: "Word Association", Type: "association"},
		{ID: 3, Name: "Spelling Bee", Type: "spelling"},
	}
}

// seedBanks gives every non-wordle type one question per difficulty level.
func seedBanks(f *fakeStore) {
	for _, g := range f.catalog {
		if g.Type == TypeWordle {
			continue
		}
		for d := 1; d <= 3; d++ {
			answer := fmt.Sprintf("%s-answer-%d", g.Type, d)
			if g.Type == TypeAnagram {
				// Anagram answers must survive the letter-multiset check
				// when echoed back verbatim.
				answer = "silent"
			}
			f.addQuestion(g.Type, d, fmt.Sprintf("%s question %d", g.Type, d), answer)
		}
	}
}

func newTestEngine(f *fakeStore) *Engine {
	return New(f, rand.New(rand.NewSource(1)), nil)
}

func TestStartNewSession(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		e := newTestEngine(newFakeStore())
		_, err := e.StartNewSession(nil)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
	})

	t.Run("filter matches nothing", func(t *testing.T) {
		e := newTestEngine(newFakeStore(textCatalog()...))
		_, err := e.StartNewSession([]string{"tetris"})
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
	})

	t.Run("initial state", func(t *testing.T) {
		f := newFakeStore(textCatalog()...)
		e := newTestEngine(f)
		s, err := e.StartNewSession(nil)
		if err != nil {
			t.Fatalf("StartNewSession failed: %v", err)
		}
		if s.Round != 1 || s.Streak != 0 || s.Score != 0 || !s.Active {
			t.Errorf("unexpected initial state: %+v", s)
		}
		if len(s.Types) != 3 {
			t.Errorf("expected 3 game types, got %d", len(s.Types))
		}
		if len(f.sessions) != 1 {
			t.Errorf("expected exactly one session row, got %d", len(f.sessions))
		}
		if f.dailyTouches != 1 {
			t.Errorf("expected one daily-streak touch, got %d", f.dailyTouches)
		}
	})

	t.Run("filter restricts types", func(t *testing.T) {
		e := newTestEngine(newFakeStore(textCatalog()...))
		s, err := e.StartNewSession([]string{"anagram", "spelling"})
		if err != nil {
			t.Fatalf("StartNewSession failed: %v", err)
		}
		if len(s.Types) != 2 {
			t.Errorf("expected 2 game types after filter, got %d", len(s.Types))
		}
	})
}

// playCorrect requests the next challenge and answers it correctly.
func playCorrect(t *testing.T, e *Engine) *Challenge {
	t.Helper()
	ch, err := e.NextChallenge()
	if err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}
	if ch == nil {
		t.Fatal("NextChallenge returned nil during active session")
	}
	res, err := e.SubmitAnswer(ch.Answer)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !res.IsCorrect {
		t.Fatalf("answer %q judged incorrect for %s", ch.Answer, ch.GameType.Type)
	}
	return ch
}

func TestRoundRollover(t *testing.T) {
	f := newFakeStore(textCatalog()...)
	seedBanks(f)
	e := newTestEngine(f)
	s, err := e.StartNewSession(nil)
	if err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < len(s.Types); i++ {
		ch := playCorrect(t, e)
		if seen[ch.GameType.Type] {
			t.Errorf("type %s repeated within round 1", ch.GameType.Type)
		}
		seen[ch.GameType.Type] = true
		if s.Round != 1 {
			t.Fatalf("round advanced early: %d", s.Round)
		}
	}

	// All types played: the next request rolls the round over.
	if _, err := e.NextChallenge(); err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}
	if s.Round != 2 {
		t.Errorf("round = %d after rollover, want 2", s.Round)
	}
	if got := f.sessions[s.ID].Round; got != 2 {
		t.Errorf("persisted round = %d, want 2", got)
	}
	if len(s.played) != 1 {
		t.Errorf("played set holds %d entries after rollover, want 1", len(s.played))
	}
}

func TestStreakAndFailure(t *testing.T) {
	f := newFakeStore(textCatalog()...)
	seedBanks(f)
	f.stats = models.UserStats{TotalGames: 10, LongestStreak: 2}
	e := newTestEngine(f)
	s, err := e.StartNewSession(nil)
	if err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		playCorrect(t, e)
		if s.Streak != i {
			t.Errorf("streak = %d after %d correct answers", s.Streak, i)
		}
		if !s.Active {
			t.Fatal("session deactivated on a correct answer")
		}
	}
	if got := f.sessions[s.ID].Streak; got != 3 {
		t.Errorf("persisted streak = %d, want 3", got)
	}

	if _, err := e.NextChallenge(); err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}
	res, err := e.SubmitAnswer("definitely wrong")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.IsCorrect {
		t.Fatal("wrong answer judged correct")
	}
	if res.Points != 0 {
		t.Errorf("points = %d for a wrong answer, want 0", res.Points)
	}
	if s.Active {
		t.Error("session still active after wrong answer")
	}
	if s.Streak != 3 {
		t.Errorf("streak changed on wrong answer: %d", s.Streak)
	}
	if f.sessions[s.ID].EndTime == nil {
		t.Error("session end time not persisted")
	}

	// total_games accumulates by streak length; longest streak is a max.
	if f.stats.TotalGames != 13 {
		t.Errorf("total games = %d, want 13", f.stats.TotalGames)
	}
	if f.stats.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", f.stats.LongestStreak)
	}
}

func TestLongestStreakNotLowered(t *testing.T) {
	f := newFakeStore(textCatalog()...)
	seedBanks(f)
	f.stats = models.UserStats{TotalGames: 5, LongestStreak: 9}
	e := newTestEngine(f)
	if _, err := e.StartNewSession(nil); err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	playCorrect(t, e)
	if _, err := e.NextChallenge(); err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}
	if _, err := e.SubmitAnswer("wrong"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	if f.stats.TotalGames != 6 {
		t.Errorf("total games = %d, want 6", f.stats.TotalGames)
	}
	if f.stats.LongestStreak != 9 {
		t.Errorf("longest streak = %d, want 9", f.stats.LongestStreak)
	}
}

func TestDifficultyCappedAtThree(t *testing.T) {
	f := newFakeStore(models.GameType{ID: 1, Name: "Spelling Bee", Type: "spelling"})
	seedBanks(f)
	e := newTestEngine(f)
	if _, err := e.StartNewSession(nil); err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	// One type per round, so five cycles reach round 5.
	for i := 0; i < 5; i++ {
		playCorrect(t, e)
	}

	want := []string{"spelling:1", "spelling:2", "spelling:3", "spelling:3", "spelling:3"}
	if !reflect.DeepEqual(f.questionCalls, want) {
		t.Errorf("question lookups = %v, want %v", f.questionCalls, want)
	}
}

func TestDifficultyFallback(t *testing.T) {
	f := newFakeStore(models.GameType{ID: 1, Name: "Spelling Bee", Type: "spelling"})
	f.addQuestion("spelling", 1, "easy question", "easy")
	e := newTestEngine(f)
	if _, err := e.StartNewSession(nil); err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	playCorrect(t, e) // round 1, difficulty 1

	// Round 2 has no content at difficulty 2; the lookup falls back to 1.
	ch, err := e.NextChallenge()
	if err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}
	if ch == nil {
		t.Fatal("expected a fallback challenge")
	}
	if ch.Difficulty != 1 {
		t.Errorf("challenge difficulty = %d, want 1", ch.Difficulty)
	}
	want := []string{"spelling:1", "spelling:2", "spelling:1"}
	if !reflect.DeepEqual(f.questionCalls, want) {
		t.Errorf("question lookups = %v, want %v", f.questionCalls, want)
	}
}

func TestNoContentReturnsNil(t *testing.T) {
	f := newFakeStore(models.GameType{ID: 1, Name: "Spelling Bee", Type: "spelling"})
	e := newTestEngine(f)
	s, err := e.StartNewSession(nil)
	if err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	ch, err := e.NextChallenge()
	if err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}
	if ch != nil {
		t.Fatalf("expected nil challenge with an empty word bank, got %+v", ch)
	}
	if !s.Active {
		t.Error("session deactivated by an empty word bank")
	}
	if len(s.played) != 0 {
		t.Error("type marked played without a served challenge")
	}
}

func TestGuards(t *testing.T) {
	t.Run("submit without session", func(t *testing.T) {
		e := newTestEngine(newFakeStore(textCatalog()...))
		_, err := e.SubmitAnswer("anything")
		var stateErr *InvalidStateError
		if !errors.As(err, &stateErr) {
			t.Fatalf("expected InvalidStateError, got %v", err)
		}
	})

	t.Run("next without session", func(t *testing.T) {
		e := newTestEngine(newFakeStore(textCatalog()...))
		ch, err := e.NextChallenge()
		if err != nil || ch != nil {
			t.Fatalf("expected nil, nil without a session, got %v, %v", ch, err)
		}
	})

	t.Run("submit twice without new challenge", func(t *testing.T) {
		f := newFakeStore(textCatalog()...)
		seedBanks(f)
		e := newTestEngine(f)
		if _, err := e.StartNewSession(nil); err != nil {
			t.Fatalf("StartNewSession failed: %v", err)
		}
		playCorrect(t, e)
		_, err := e.SubmitAnswer("again")
		var stateErr *InvalidStateError
		if !errors.As(err, &stateErr) {
			t.Fatalf("expected InvalidStateError after the challenge cleared, got %v", err)
		}
	})
}

func TestStoreFailureLeavesStateUntouched(t *testing.T) {
	t.Run("append result fails", func(t *testing.T) {
		f := newFakeStore(textCatalog()...)
		seedBanks(f)
		e := newTestEngine(f)
		s, err := e.StartNewSession(nil)
		if err != nil {
			t.Fatalf("StartNewSession failed: %v", err)
		}
		ch, err := e.NextChallenge()
		if err != nil {
			t.Fatalf("NextChallenge failed: %v", err)
		}

		f.appendErr = errors.New("disk full")
		if _, err := e.SubmitAnswer(ch.Answer); err == nil {
			t.Fatal("expected store error to propagate")
		}
		if s.Streak != 0 || s.Score != 0 {
			t.Errorf("in-memory state mutated after failed write: streak=%d score=%d", s.Streak, s.Score)
		}
		if e.CurrentChallenge() == nil {
			t.Error("challenge cleared after failed write")
		}
	})

	t.Run("progress update fails", func(t *testing.T) {
		f := newFakeStore(textCatalog()...)
		seedBanks(f)
		e := newTestEngine(f)
		s, err := e.StartNewSession(nil)
		if err != nil {
			t.Fatalf("StartNewSession failed: %v", err)
		}
		ch, err := e.NextChallenge()
		if err != nil {
			t.Fatalf("NextChallenge failed: %v", err)
		}

		f.progressErr = errors.New("connection reset")
		if _, err := e.SubmitAnswer(ch.Answer); err == nil {
			t.Fatal("expected store error to propagate")
		}
		if s.Streak != 0 {
			t.Errorf("streak incremented despite failed persist: %d", s.Streak)
		}
	})
}

func TestEndSession(t *testing.T) {
	f := newFakeStore(textCatalog()...)
	seedBanks(f)
	e := newTestEngine(f)
	s, err := e.StartNewSession(nil)
	if err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}
	playCorrect(t, e)
	playCorrect(t, e)

	if err := e.EndSession(); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if e.CurrentSession() != nil || e.CurrentChallenge() != nil {
		t.Error("in-memory state survived EndSession")
	}
	if f.sessions[s.ID].EndTime == nil {
		t.Error("end time not persisted")
	}
	if f.stats.TotalGames != 2 || f.stats.LongestStreak != 2 {
		t.Errorf("aggregates = %+v, want totalGames=2 longestStreak=2", f.stats)
	}

	// A second call is a no-op.
	if err := e.EndSession(); err != nil {
		t.Fatalf("repeated EndSession failed: %v", err)
	}
	if f.stats.TotalGames != 2 {
		t.Errorf("aggregates applied twice: totalGames=%d", f.stats.TotalGames)
	}
}

func TestEndSessionAfterFailureDoesNotDoubleCount(t *testing.T) {
	f := newFakeStore(textCatalog()...)
	seedBanks(f)
	e := newTestEngine(f)
	if _, err := e.StartNewSession(nil); err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}
	playCorrect(t, e)
	if _, err := e.NextChallenge(); err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}
	if _, err := e.SubmitAnswer("wrong"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if f.stats.TotalGames != 1 {
		t.Fatalf("total games = %d after failure, want 1", f.stats.TotalGames)
	}

	if err := e.EndSession(); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if f.stats.TotalGames != 1 {
		t.Errorf("aggregates double-counted: totalGames=%d", f.stats.TotalGames)
	}
	if e.CurrentSession() != nil {
		t.Error("session state survived EndSession")
	}
}

func TestCleanupSession(t *testing.T) {
	f := newFakeStore(textCatalog()...)
	seedBanks(f)
	e := newTestEngine(f)
	if _, err := e.StartNewSession(nil); err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}
	if _, err := e.NextChallenge(); err != nil {
		t.Fatalf("NextChallenge failed: %v", err)
	}

	sessions := len(f.sessions)
	e.CleanupSession()
	if e.CurrentSession() != nil || e.CurrentChallenge() != nil {
		t.Error("cleanup left in-memory state behind")
	}
	if len(f.sessions) != sessions {
		t.Error("cleanup touched the store")
	}
}

func TestSessionSummary(t *testing.T) {
	f := newFakeStore(textCatalog()...)
	f.results = []models.GameResult{
		{ID: 1, SessionID: 7, GameID: 1, IsCorrect: true, TimeTakenMs: 1000, Difficulty: "1"},
		{ID: 2, SessionID: 7, GameID: 2, IsCorrect: false, TimeTakenMs: 2000, Difficulty: "1"},
		{ID: 3, SessionID: 7, GameID: 1, IsCorrect: true, TimeTakenMs: 3000, Difficulty: "2"},
		{ID: 4, SessionID: 8, GameID: 1, IsCorrect: true, TimeTakenMs: 9000, Difficulty: "1"},
	}
	e := newTestEngine(f)

	sum, err := e.SessionSummary(7)
	if err != nil {
		t.Fatalf("SessionSummary failed: %v", err)
	}
	if sum.TotalGames != 3 || sum.CorrectAnswers != 2 || sum.IncorrectAnswers != 1 {
		t.Errorf("totals = %d/%d/%d, want 3/2/1", sum.TotalGames, sum.CorrectAnswers, sum.IncorrectAnswers)
	}
	if sum.AverageTimeMs != 2000 {
		t.Errorf("average time = %v, want 2000", sum.AverageTimeMs)
	}

	if len(sum.GameBreakdown) != 2 {
		t.Fatalf("breakdown has %d entries, want 2", len(sum.GameBreakdown))
	}
	anagram := sum.GameBreakdown[0]
	if anagram.Name != "Anagram Solver" || anagram.Played != 2 || anagram.Correct != 2 || anagram.AverageTimeMs != 2000 {
		t.Errorf("anagram breakdown = %+v", anagram)
	}
	association := sum.GameBreakdown[1]
	if association.Name != "Word Association" || association.Played != 1 || association.Correct != 0 || association.AverageTimeMs != 2000 {
		t.Errorf("association breakdown = %+v", association)
	}

	// Recomputing with no new results yields identical output.
	again, err := e.SessionSummary(7)
	if err != nil {
		t.Fatalf("second SessionSummary failed: %v", err)
	}
	if !reflect.DeepEqual(sum, again) {
		t.Errorf("summary not idempotent: %+v vs %+v", sum, again)
	}
}

func TestSessionSummaryEmpty(t *testing.T) {
	e := newTestEngine(newFakeStore(textCatalog()...))
	sum, err := e.SessionSummary(99)
	if err != nil {
		t.Fatalf("SessionSummary failed: %v", err)
	}
	if sum.TotalGames != 0 || sum.AverageTimeMs != 0 || len(sum.GameBreakdown) != 0 {
		t.Errorf("unexpected summary for empty session: %+v", sum)
	}
}

func TestResultDifficultyTags(t *testing.T) {
	f := newFakeStore(models.GameType{ID: 1, Name: "Spelling Bee", Type: "spelling"})
	seedBanks(f)
	e := newTestEngine(f)
	if _, err := e.StartNewSession(nil); err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}
	playCorrect(t, e)
	playCorrect(t, e)

	if len(f.results) != 2 {
		t.Fatalf("expected 2 result rows, got %d", len(f.results))
	}
	for i, r := range f.results {
		want := strconv.Itoa(i + 1)
		if r.Difficulty != want {
			t.Errorf("result %d difficulty tag = %q, want %q", i, r.Difficulty, want)
		}
	}
}

func TestPointsScaleWithDifficulty(t *testing.T) {
	f := newFakeStore(models.GameType{ID: 1, Name: "Spelling Bee", Type: "spelling"})
	seedBanks(f)
	e := newTestEngine(f)
	s, err := e.StartNewSession(nil)
	if err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	var total int
	for round := 1; round <= 2; round++ {
		ch, err := e.NextChallenge()
		if err != nil || ch == nil {
			t.Fatalf("NextChallenge failed: %v", err)
		}
		res, err := e.SubmitAnswer(ch.Answer)
		if err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
		if want := round * difficultyPoints; res.Points != want {
			t.Errorf("round %d points = %d, want %d", round, res.Points, want)
		}
		total += res.Points
	}
	if s.Score != total {
		t.Errorf("session score = %d, want %d", s.Score, total)
	}
}

func TestWordleChallenges(t *testing.T) {
	f := newFakeStore(models.GameType{ID: 3, Name: "Wordle", Type: "wordle"})
	e := newTestEngine(f)
	if _, err := e.StartNewSession(nil); err != nil {
		t.Fatalf("StartNewSession failed: %v", err)
	}

	valid := make(map[string]bool, words.Count())
	for _, w := range words.List() {
		valid[w] = true
	}

	modes := make(map[Mode]int)
	for i := 0; i < 100; i++ {
		ch, err := e.NextChallenge()
		if err != nil || ch == nil {
			t.Fatalf("NextChallenge failed: %v", err)
		}
		if !valid[ch.Answer] {
			t.Fatalf("secret word %q not in the embedded list", ch.Answer)
		}
		modes[ch.Mode]++

		params, ok := wordleModes[ch.Mode]
		if !ok {
			t.Fatalf("unknown mode %q", ch.Mode)
		}
		if ch.MaxGuesses != params.MaxGuesses {
			t.Errorf("mode %s max guesses = %d, want %d", ch.Mode, ch.MaxGuesses, params.MaxGuesses)
		}
		if params.Clue {
			if ch.Clue == "" {
				t.Fatal("jumble challenge missing clue")
			}
			if !SameLetters(ch.Clue, ch.Answer) {
				t.Errorf("clue %q is not a scramble of %q", ch.Clue, ch.Answer)
			}
			if Normalize(ch.Clue) == ch.Answer {
				t.Errorf("clue %q equals the secret word", ch.Clue)
			}
			if ch.Clue != strings.ToUpper(ch.Clue) {
				t.Errorf("clue %q not uppercased", ch.Clue)
			}
		} else if ch.Clue != "" {
			t.Errorf("standard challenge has a clue: %q", ch.Clue)
		}

		res, err := e.SubmitAnswer(ch.Answer)
		if err != nil {
			t.Fatalf("SubmitAnswer failed: %v", err)
		}
		if res.Points != params.Points {
			t.Errorf("mode %s points = %d, want %d", ch.Mode, res.Points, params.Points)
		}
	}

	if modes[ModeJumble] == 0 || modes[ModeStandard] == 0 {
		t.Errorf("expected both modes over 100 draws, got %v", modes)
	}
}
