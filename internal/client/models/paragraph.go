package models

import "fmt"

// Paragraph is one search hit: a stored paragraph and how many times the
// searched word occurs in it. Hits only live as long as the current screen.
type Paragraph struct {
	ID      int64  `json:"paragraph_id"`
	Content string `json:"content"`
	Count   int    `json:"count"`
}

func (p Paragraph) String() string {
	return fmt.Sprintf("#%d (occurrences: %d)\n%s", p.ID, p.Count, p.Content)
}
