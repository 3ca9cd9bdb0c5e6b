package domain

import (
	"context"
	"time"
)

// QuizOption is one answer choice of a question.
type QuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestion asks for the definition of Prompt. CorrectOptionID always
// references exactly one of Options.
type QuizQuestion struct {
	ID              string       `json:"id"`
	Prompt          string       `json:"prompt"`
	Options         []QuizOption `json:"options"`
	CorrectOptionID string       `json:"correctOptionId"`
}

// OptionText returns the text of the option with the given ID.
func (q *QuizQuestion) OptionText(optionID string) (string, bool) {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt.Text, true
		}
	}
	return "", false
}

// CorrectText returns the text of the correct option.
func (q *QuizQuestion) CorrectText() string {
	text, _ := q.OptionText(q.CorrectOptionID)
	return text
}

// Quiz is a generated set of questions. It stays open until it is graded once,
// after which it no longer exists.
type Quiz struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"ownerId"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}

// QuizStore holds open quizzes.
//
// Get and Claim return nil without an error when no open quiz with that ID
// belongs to ownerID. Claim removes the quiz in the same step it reads it, so
// that for concurrent callers at most one receives the quiz.
type QuizStore interface {
	Save(ctx context.Context, quiz *Quiz) error
	Get(ctx context.Context, ownerID, quizID string) (*Quiz, error)
	Claim(ctx context.Context, ownerID, quizID string) (*Quiz, error)
	// Restore puts a claimed quiz back after its result could not be stored.
	Restore(ctx context.Context, quiz *Quiz) error
}
