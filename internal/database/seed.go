package database

import (
	"encoding/json"
	"fmt"
)

// seedGameType is one catalog entry inserted on first run.
type seedGameType struct {
	Name        string
	Description string
	Type        string
}

// seedQuestion is one word-bank entry inserted on first run.
type seedQuestion struct {
	GameType   string
	Question   string
	Answer     string
	Options    []string
	Difficulty int
}

var seedGameTypes = []seedGameType{
	{Name: "Anagram Solver", Description: "Rearrange letters to form a word", Type: "anagram"},
	{Name: "Word Association", Description: "Find the opposite or related word", Type: "association"},
	{Name: "Wordle", Description: "Guess the 5-letter word", Type: "wordle"},
	{Name: "Odd One Out", Description: "Find the word that doesn't belong", Type: "odd_one_out"},
	{Name: "Synonym Match", Description: "Find the word with similar meaning", Type: "synonym"},
	{Name: "Spelling Bee", Description: "Spell the word correctly", Type: "spelling"},
}

var seedQuestions = []seedQuestion{
	// Anagram
	{GameType: "anagram", Question: "LISTEN", Answer: "SILENT", Difficulty: 1},
	{GameType: "anagram", Question: "EARTH", Answer: "HEART", Difficulty: 1},
	{GameType: "anagram", Question: "ANGEL", Answer: "GLEAN", Difficulty: 1},
	{GameType: "anagram", Question: "BREAD", Answer: "BEARD", Difficulty: 1},
	{GameType: "anagram", Question: "STRESSED", Answer: "DESSERTS", Difficulty: 2},
	{GameType: "anagram", Question: "TEACHER", Answer: "CHEATER", Difficulty: 2},
	{GameType: "anagram", Question: "DORMITORY", Answer: "DIRTY ROOM", Difficulty: 2},

	// Word Association
	{GameType: "association", Question: "Hot", Answer: "Cold", Options: []string{"Cold", "Warm", "Fire", "Ice"}, Difficulty: 1},
	{GameType: "association", Question: "Up", Answer: "Down", Options: []string{"Down", "High", "Top", "Above"}, Difficulty: 1},
	{GameType: "association", Question: "Big", Answer: "Small", Options: []string{"Small", "Large", "Huge", "Giant"}, Difficulty: 1},
	{GameType: "association", Question: "Fast", Answer: "Slow", Options: []string{"Slow", "Quick", "Rapid", "Swift"}, Difficulty: 1},
	{GameType: "association", Question: "Abundant", Answer: "Scarce", Options: []string{"Scarce", "Plenty", "Rich", "Full"}, Difficulty: 2},
	{GameType: "association", Question: "Ancient", Answer: "Modern", Options: []string{"Modern", "Old", "Historic", "Vintage"}, Difficulty: 2},

	// Odd One Out
	{GameType: "odd_one_out", Question: "Apple, Orange, Car, Banana", Answer: "Car", Options: []string{"Apple", "Orange", "Car", "Banana"}, Difficulty: 1},
	{GameType: "odd_one_out", Question: "Dog, Cat, Fish, Chair", Answer: "Chair", Options: []string{"Dog", "Cat", "Fish", "Chair"}, Difficulty: 1},
	{GameType: "odd_one_out", Question: "Red, Blue, Green, Book", Answer: "Book", Options: []string{"Red", "Blue", "Green", "Book"}, Difficulty: 1},
	{GameType: "odd_one_out", Question: "Mercury, Venus, Earth, Jupiter", Answer: "Jupiter", Options: []string{"Mercury", "Venus", "Earth", "Jupiter"}, Difficulty: 2},
	{GameType: "odd_one_out", Question: "Piano, Guitar, Violin, Painting", Answer: "Painting", Options: []string{"Piano", "Guitar", "Violin", "Painting"}, Difficulty: 2},

	// Synonym Match
	{GameType: "synonym", Question: "Happy", Answer: "Joyful", Options: []string{"Sad", "Joyful", "Angry", "Tired"}, Difficulty: 1},
	{GameType: "synonym", Question: "Big", Answer: "Large", Options: []string{"Small", "Large", "Tiny", "Mini"}, Difficulty: 1},
	{GameType: "synonym", Question: "Smart", Answer: "Clever", Options: []string{"Dumb", "Clever", "Slow", "Lazy"}, Difficulty: 1},
	{GameType: "synonym", Question: "Magnificent", Answer: "Splendid", Options: []string{"Terrible", "Splendid", "Awful", "Poor"}, Difficulty: 2},
	{GameType: "synonym", Question: "Abundant", Answer: "Plentiful", Options: []string{"Scarce", "Plentiful", "Rare", "Limited"}, Difficulty: 2},

	// Spelling Bee
	{GameType: "spelling", Question: "A large African animal with a trunk", Answer: "elephant", Difficulty: 1},
	{GameType: "spelling", Question: "The color of grass", Answer: "green", Difficulty: 1},
	{GameType: "spelling", Question: "A vehicle with four wheels", Answer: "car", Difficulty: 1},
	{GameType: "spelling", Question: "The study of living organisms", Answer: "biology", Difficulty: 2},
	{GameType: "spelling", Question: "A person who designs buildings", Answer: "architect", Difficulty: 2},
}

// Seed inserts the game catalog, the singleton user-stats row, and the
// word-bank content on first run. Safe to call on every startup: it is a
// no-op once the catalog exists.
func (db *DB) Seed() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM games").Scan(&count); err != nil {
		return fmt.Errorf("failed to count games: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, g := range seedGameTypes {
		query := "INSERT INTO games (name, description, type) VALUES (?, ?, ?)"
		if _, err := tx.Exec(query, g.Name, g.Description, g.Type); err != nil {
			return fmt.Errorf("failed to seed game type %s: %w", g.Type, err)
		}
	}

	var statsCount int
	if err := tx.QueryRow("SELECT COUNT(*) FROM user_stats WHERE id = ?", 1).Scan(&statsCount); err != nil {
		return fmt.Errorf("failed to check user stats: %w", err)
	}
	if statsCount == 0 {
		query := "INSERT INTO user_stats (id, total_games, longest_streak, daily_streak) VALUES (?, 0, 0, 0)"
		if _, err := tx.Exec(query, 1); err != nil {
			return fmt.Errorf("failed to seed user stats: %w", err)
		}
	}

	for _, q := range seedQuestions {
		var options interface{}
		if len(q.Options) > 0 {
			encoded, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("failed to encode options for %q: %w", q.Question, err)
			}
			options = string(encoded)
		}
		query := "INSERT INTO word_bank (game_type, question, answer, options, difficulty) VALUES (?, ?, ?, ?, ?)"
		if _, err := tx.Exec(query, q.GameType, q.Question, q.Answer, options, q.Difficulty); err != nil {
			return fmt.Errorf("failed to seed question %q: %w", q.Question, err)
		}
	}

	return tx.Commit()
}
