package models

import "time"

// OpenQuiz is a row of the open_quizzes table. Payload holds the questions as JSON.
type OpenQuiz struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Title     string    `db:"title"`
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}
