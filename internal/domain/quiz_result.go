package domain

import (
	"context"
	"time"
)

// NotAnsweredText is shown as the selected text of a question without a valid selection.
const NotAnsweredText = "Not Answered"

// SubmittedAnswer is the user's choice for one question. A nil
// SelectedOptionID means the question was left unanswered.
type SubmittedAnswer struct {
	QuestionID       string
	SelectedOptionID *string
}

// GradedQuestionResult is the outcome of one question.
type GradedQuestionResult struct {
	QuestionID         string
	QuestionText       string
	SelectedOptionText string
	CorrectOptionText  string
	IsCorrect          bool
}

// QuizResult is the immutable record of a graded quiz. QuizID is empty for
// results recorded manually.
type QuizResult struct {
	ID             string
	OwnerID        string
	QuizID         string
	Title          string
	Score          int
	TotalQuestions int
	Results        []GradedQuestionResult
	CreatedAt      time.Time
}

// NewManualQuizResult creates a result without per-question detail.
func NewManualQuizResult(ownerID string, score, totalQuestions int) (*QuizResult, error) {
	result := &QuizResult{
		OwnerID:        ownerID,
		Score:          score,
		TotalQuestions: totalQuestions,
		CreatedAt:      time.Now(),
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// Validate validates the quiz result
func (r *QuizResult) Validate() error {
	var errs ValidationErrors
	if r.OwnerID == "" {
		errs = append(errs, NewMissingFieldError("ownerId"))
	}
	if r.TotalQuestions < 1 {
		errs = append(errs, ValidationError{
			Field:   "totalQuestions",
			Code:    CodeOutOfRange,
			Message: "totalQuestions must be at least 1",
			Value:   r.TotalQuestions,
		})
	}
	if r.Score < 0 || (r.TotalQuestions >= 1 && r.Score > r.TotalQuestions) {
		errs = append(errs, NewOutOfRangeError("score", r.Score, 0, r.TotalQuestions))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IncorrectAnswer is a wrongly answered (or unanswered) question together
// with the result it belongs to.
type IncorrectAnswer struct {
	ResultID string
	QuizID   string
	GradedQuestionResult
	CreatedAt time.Time
}

// ScoreAggregate holds the running totals over a user's results.
type ScoreAggregate struct {
	Count         int
	ScoreSum      int
	PercentageSum float64
}

// OverallProgress is the user's aggregated performance.
type OverallProgress struct {
	AverageScore      float64
	AveragePercentage float64
	TotalQuizzesTaken int
}

// Progress turns the totals into averages. AverageScore is the mean of raw
// scores regardless of quiz length.
func (a ScoreAggregate) Progress() OverallProgress {
	if a.Count == 0 {
		return OverallProgress{}
	}
	return OverallProgress{
		AverageScore:      float64(a.ScoreSum) / float64(a.Count),
		AveragePercentage: a.PercentageSum / float64(a.Count),
		TotalQuizzesTaken: a.Count,
	}
}

// QuizResultRepository defines the interface for quiz result persistence.
type QuizResultRepository interface {
	Create(ctx context.Context, result *QuizResult) error
	GetByID(ctx context.Context, ownerID, id string) (*QuizResult, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]QuizResult, int, error)
	Aggregate(ctx context.Context, ownerID string) (*ScoreAggregate, error)
	ExistsForQuiz(ctx context.Context, ownerID, quizID string) (bool, error)
	// ListIncorrectAnswers lists incorrect rows newest first. An empty quizID
	// means every result of the owner.
	ListIncorrectAnswers(ctx context.Context, ownerID, quizID string) ([]IncorrectAnswer, error)
}
