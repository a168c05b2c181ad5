package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is an optional per-question label. Exporters render it verbatim;
// an empty value means unrated.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Question struct {
	Text        string     `json:"question"`
	Options     []string   `json:"options"` // order-significant; letters derive from position (A=0, B=1, ...)
	Correct     int        `json:"correct"` // zero-based index into Options
	Explanation string     `json:"explanation,omitempty"`
	Image       string     `json:"image,omitempty"` // logical filename, resolved by the embedding document
	Difficulty  Difficulty `json:"difficulty,omitempty"`
}

// Validate enforces the structural invariants every stored question satisfies.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text is required")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question needs at least 2 options, got %d", len(q.Options))
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range for %d options", q.Correct, len(q.Options))
	}
	return nil
}

type Quiz struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// New returns an empty quiz with the stock title/description used when the
// caller supplies none.
func New() *Quiz {
	return &Quiz{
		Title:       "Interactive Knowledge Quiz",
		Description: "Test your knowledge with this interactive quiz.",
	}
}

// Add validates q and appends it. Invalid questions are rejected, never
// clamped: parsers hand through whatever their grammar accepted, and this is
// the single point that decides what the model stores.
func (qz *Quiz) Add(q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	qz.Questions = append(qz.Questions, q)
	return nil
}

// Append adds each question in order, counting rejections instead of
// stopping on them.
func (qz *Quiz) Append(qs []Question) (added, rejected int) {
	for _, q := range qs {
		if qz.Add(q) != nil {
			rejected++
			continue
		}
		added++
	}
	return added, rejected
}

// Remove deletes the question at i. Questions have positional identity, so
// callers holding indexes past i must re-derive them.
func (qz *Quiz) Remove(i int) error {
	if i < 0 || i >= len(qz.Questions) {
		return fmt.Errorf("question index %d out of range", i)
	}
	qz.Questions = append(qz.Questions[:i], qz.Questions[i+1:]...)
	return nil
}

func (qz *Quiz) Clear() { qz.Questions = nil }

func (qz *Quiz) Count() int { return len(qz.Questions) }

// Validate re-checks every stored question. A quiz mutated only through Add
// always passes; this guards quizzes assembled literally.
func (qz *Quiz) Validate() error {
	for i, q := range qz.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
