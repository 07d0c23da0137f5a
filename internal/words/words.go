// Package words holds the embedded answer list for wordle challenges.
// Every entry is exactly WordLength lowercase ASCII letters; anything else
// in the source file is dropped at load time.
package words

import (
	_ "embed"
	"strings"
)

// WordLength is the fixed length of every wordle answer.
const WordLength = 5

//go:embed answers.txt
var embedded string

var answers = normalizeLines(embedded)

// List returns the full answer list. Callers must not modify the returned
// slice.
func List() []string {
	return answers
}

// Count returns the number of loaded answers.
func Count() int {
	return len(answers)
}

// normalizeLines splits a multiline string into valid lowercase answers.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
