package dto

import "time"

// OverallProgressResponse represents aggregated quiz statistics
// @Description Average score over every graded quiz
type OverallProgressResponse struct {
	AverageScore      float64 `json:"averageScore"`
	AveragePercentage float64 `json:"averagePercentage"`
	TotalQuizzesTaken int     `json:"totalQuizzesTaken"`
}

// RecordQuizResultRequest records a score obtained outside the quiz flow.
// @Description Request body for recording a quiz result
type RecordQuizResultRequest struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
}

// QuizResultResponse represents one stored result. Results is empty for
// manually recorded scores.
type QuizResultResponse struct {
	ID             string                   `json:"id"`
	QuizID         string                   `json:"quizId,omitempty"`
	Title          string                   `json:"title,omitempty"`
	Score          int                      `json:"score"`
	TotalQuestions int                      `json:"totalQuestions"`
	Results        []GradedQuestionResponse `json:"results,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
}

// RecordQuizResultResponse wraps a newly recorded result.
type RecordQuizResultResponse struct {
	Message string             `json:"message"`
	Result  QuizResultResponse `json:"result"`
}

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Limit int `query:"limit"`
	Page  int `query:"page"`
}

// PaginationInfo defines pagination details for responses.
type PaginationInfo struct {
	TotalItems  int `json:"totalItems"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// QuizResultsResponse is the paginated list of the user's results.
type QuizResultsResponse struct {
	Results        []QuizResultResponse `json:"results"`
	PaginationInfo PaginationInfo       `json:"paginationInfo"`
}

// ProgressSummaryResponse combines progress, vocabulary size and latest results.
type ProgressSummaryResponse struct {
	Overall         OverallProgressResponse `json:"overall"`
	VocabularyCount int                     `json:"vocabularyCount"`
	RecentResults   []QuizResultResponse    `json:"recentResults"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Message string `json:"message"`
}
