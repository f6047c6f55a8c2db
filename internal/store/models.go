package store

// Card is one study record. Front and Back hold the raw authored text
// exactly as stored; the card package decodes them on every read.
type Card struct {
	ID        string `json:"id"`
	Front     string `json:"front"`
	Back      string `json:"back"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// DeckItem is one ordered card reference inside a deck or quiz
// template.
type DeckItem struct {
	CardID   string `json:"card_id"`
	Position int    `json:"position"`
}

// DeckItems is the wrapper shape the items column uses.
type DeckItems struct {
	Items []DeckItem `json:"items"`
}

type Deck struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Items DeckItems `json:"items"`
}

type QuizTemplate struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Items       DeckItems `json:"items"`
}

// Review records one graded submission: the answer as submitted and
// the boolean verdict. The verdict is persisted by this layer, never
// by the grading code itself.
type Review struct {
	ID        string   `json:"id"`
	CardID    string   `json:"card_id"`
	UserID    string   `json:"user_id"`
	Answer    []string `json:"answer"`
	Correct   bool     `json:"correct"`
	CreatedAt int64    `json:"created_at,omitempty"`
}
