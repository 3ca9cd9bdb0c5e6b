package dto

import "time"

// QuizOptionResponse is one answer choice shown to the user.
type QuizOptionResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestionResponse is the public form of a question. It never carries the
// correct option.
type QuizQuestionResponse struct {
	ID      string               `json:"id"`
	Text    string               `json:"text"`
	Options []QuizOptionResponse `json:"options"`
}

// QuizResponse represents an open quiz in the API response
// @Description Open quiz without answers
type QuizResponse struct {
	QuizID    string                 `json:"quizId"`
	Title     string                 `json:"title"`
	CreatedAt time.Time              `json:"createdAt"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// SubmittedAnswerRequest is one answer in a submission. A null or missing
// selectedOptionId means the question was skipped.
type SubmittedAnswerRequest struct {
	QuestionID       string  `json:"questionId"`
	SelectedOptionID *string `json:"selectedOptionId"`
}

// SubmitQuizRequest represents a quiz submission
// @Description Request body for grading a quiz
type SubmitQuizRequest struct {
	QuizID  string                   `json:"quizId"`
	Answers []SubmittedAnswerRequest `json:"answers"`
}

// GradedQuestionResponse is the outcome of a single question.
type GradedQuestionResponse struct {
	QuestionID         string `json:"questionId"`
	QuestionText       string `json:"questionText"`
	SelectedOptionText string `json:"selectedOptionText"`
	CorrectOptionText  string `json:"correctOptionText"`
	IsCorrect          bool   `json:"isCorrect"`
}

// SubmitQuizResponse represents the grading result
// @Description Score and per-question results of a graded quiz
type SubmitQuizResponse struct {
	ResultID       string                   `json:"resultId"`
	Score          int                      `json:"score"`
	TotalQuestions int                      `json:"totalQuestions"`
	Results        []GradedQuestionResponse `json:"results"`
	Message        string                   `json:"message"`
}

// IncorrectAnswerResponse is a question the user got wrong in a graded quiz.
type IncorrectAnswerResponse struct {
	ResultID           string    `json:"resultId"`
	QuizID             string    `json:"quizId"`
	QuestionID         string    `json:"questionId"`
	QuestionText       string    `json:"questionText"`
	SelectedOptionText string    `json:"selectedOptionText"`
	CorrectOptionText  string    `json:"correctOptionText"`
	AnsweredAt         time.Time `json:"answeredAt"`
}

// IncorrectAnswersResponse lists incorrect answers, newest first.
type IncorrectAnswersResponse struct {
	IncorrectAnswers []IncorrectAnswerResponse `json:"incorrectAnswers"`
	Total            int                       `json:"total"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}
