package models

import (
	"database/sql"
	"time"
)

// QuizResult is a row of the quiz_results table. QuizID and Title are NULL
// for manually recorded results.
type QuizResult struct {
	ID             string         `db:"id"`
	OwnerID        string         `db:"owner_id"`
	QuizID         sql.NullString `db:"quiz_id"`
	Title          sql.NullString `db:"title"`
	Score          int            `db:"score"`
	TotalQuestions int            `db:"total_questions"`
	CreatedAt      time.Time      `db:"created_at"`
}

// QuizResultItem is one graded question, stored in quiz_result_items.
type QuizResultItem struct {
	ID                 string `db:"id"`
	ResultID           string `db:"result_id"`
	Position           int    `db:"position"`
	QuestionID         string `db:"question_id"`
	QuestionText       string `db:"question_text"`
	SelectedOptionText string `db:"selected_option_text"`
	CorrectOptionText  string `db:"correct_option_text"`
	IsCorrect          int    `db:"is_correct"` // 0 or 1
}

// IncorrectAnswerRow joins an incorrect item with its result.
type IncorrectAnswerRow struct {
	ResultID           string         `db:"result_id"`
	QuizID             sql.NullString `db:"quiz_id"`
	QuestionID         string         `db:"question_id"`
	QuestionText       string         `db:"question_text"`
	SelectedOptionText string         `db:"selected_option_text"`
	CorrectOptionText  string         `db:"correct_option_text"`
	CreatedAt          time.Time      `db:"created_at"`
}

// ScoreAggregate is the result of the per-owner aggregate query.
type ScoreAggregate struct {
	Count         int     `db:"quiz_count"`
	ScoreSum      int     `db:"score_sum"`
	PercentageSum float64 `db:"percentage_sum"`
}
