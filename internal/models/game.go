package models

// GameType describes one playable game mode from the catalog
type GameType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// WordBankItem is one question entry keyed by game type and difficulty.
// Options is non-empty only for multiple-choice game types.
type WordBankItem struct {
	ID         int64    `json:"id"`
	GameType   string   `json:"gameType"`
	Question   string   `json:"question"`
	Answer     string   `json:"-"`
	Options    []string `json:"options,omitempty"`
	Difficulty int      `json:"difficulty"`
}
