package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"wordingo/internal/models"
	"wordingo/internal/words"
)

// Mode is a named wordle difficulty mode.
type Mode string

const (
	// ModeJumble grants few guesses but shows a scrambled-letter clue.
	ModeJumble Mode = "jumble"
	// ModeStandard is the classic six-guess game with no clue.
	ModeStandard Mode = "standard"
)

// modeParams maps a mode to its guess budget, score value, and whether a
// scrambled-letter clue is generated. Adding a mode is a data change.
type modeParams struct {
	MaxGuesses int
	Points     int
	Clue       bool
}

var wordleModes = map[Mode]modeParams{
	ModeJumble:   {MaxGuesses: 3, Points: 150, Clue: true},
	ModeStandard: {MaxGuesses: 6, Points: 100, Clue: false},
}

// wordleModeOrder lists the modes for random selection. Mode choice is an
// independent random draw each challenge; immediate repeats are allowed.
var wordleModeOrder = []Mode{ModeJumble, ModeStandard}

// buildWordleChallenge draws a secret word from the embedded answer list
// and a random mode. The word bank is bypassed entirely for this type.
func (e *Engine) buildWordleChallenge(gt models.GameType) *Challenge {
	list := words.List()
	secret := list[e.rng.Intn(len(list))]

	mode := wordleModeOrder[e.rng.Intn(len(wordleModeOrder))]
	params := wordleModes[mode]

	ch := &Challenge{
		GameType:   gt,
		Question:   fmt.Sprintf("Guess the %d-letter word", words.WordLength),
		Answer:     secret,
		Mode:       mode,
		MaxGuesses: params.MaxGuesses,
	}
	if params.Clue {
		ch.Clue = JumbleWord(e.rng, secret)
	}
	return ch
}

// JumbleWord returns the letters of word scrambled into a different order,
// uppercased for display. A word whose letters are all identical cannot be
// reordered and is returned as-is.
func JumbleWord(rng *rand.Rand, word string) string {
	if !hasDistinctLetters(word) {
		return strings.ToUpper(word)
	}
	letters := []rune(word)
	for {
		for i := len(letters) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			letters[i], letters[j] = letters[j], letters[i]
		}
		if string(letters) != word {
			return strings.ToUpper(string(letters))
		}
	}
}

func hasDistinctLetters(word string) bool {
	runes := []rune(word)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return true
		}
	}
	return false
}
