package engine

import (
	"sort"
	"strings"
	"unicode"
)

// Game type identifiers the engine treats specially.
const (
	TypeAnagram = "anagram"
	TypeWordle  = "wordle"
)

// Normalize lowercases a string and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateAnswer reports whether a submitted answer matches the canonical
// answer for the given game type. Comparison is case-insensitive with
// surrounding whitespace ignored. For anagrams the letters must also form
// the same multiset, but letter identity alone never counts as correct:
// the normalized strings must still be equal.
func ValidateAnswer(gameType, userAnswer, correctAnswer string) bool {
	user := Normalize(userAnswer)
	correct := Normalize(correctAnswer)
	if gameType == TypeAnagram {
		return SameLetters(user, correct) && user == correct
	}
	return user == correct
}

// SameLetters reports whether two strings contain the same letters with
// the same multiplicity, ignoring case and all whitespace.
func SameLetters(a, b string) bool {
	return sortedLetters(a) == sortedLetters(b)
}

// sortedLetters strips whitespace, lowercases, and sorts the remaining
// runes into a canonical form.
func sortedLetters(s string) string {
	letters := make([]rune, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			letters = append(letters, r)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}
