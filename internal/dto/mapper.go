package dto

import "vocab-builder/internal/domain"

// ToQuizResponse builds the public projection of a quiz, dropping the correct
// option of every question.
func ToQuizResponse(quiz *domain.Quiz) *QuizResponse {
	questions := make([]QuizQuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options := make([]QuizOptionResponse, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, QuizOptionResponse{ID: o.ID, Text: o.Text})
		}
		questions = append(questions, QuizQuestionResponse{ID: q.ID, Text: q.Prompt, Options: options})
	}
	return &QuizResponse{
		QuizID:    quiz.ID,
		Title:     quiz.Title,
		CreatedAt: quiz.CreatedAt,
		Questions: questions,
	}
}

func ToGradedQuestionResponses(results []domain.GradedQuestionResult) []GradedQuestionResponse {
	out := make([]GradedQuestionResponse, 0, len(results))
	for _, r := range results {
		out = append(out, GradedQuestionResponse{
			QuestionID:         r.QuestionID,
			QuestionText:       r.QuestionText,
			SelectedOptionText: r.SelectedOptionText,
			CorrectOptionText:  r.CorrectOptionText,
			IsCorrect:          r.IsCorrect,
		})
	}
	return out
}

func ToQuizResultResponse(r *domain.QuizResult) QuizResultResponse {
	resp := QuizResultResponse{
		ID:             r.ID,
		QuizID:         r.QuizID,
		Title:          r.Title,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		CreatedAt:      r.CreatedAt,
	}
	if len(r.Results) > 0 {
		resp.Results = ToGradedQuestionResponses(r.Results)
	}
	return resp
}

func ToWordResponse(e *domain.VocabularyEntry) WordResponse {
	return WordResponse{ID: e.ID, Word: e.Word, Definition: e.Definition, AddedAt: e.AddedAt}
}

func ToUserProfileResponse(u *domain.User) UserProfileResponse {
	return UserProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func ToOverallProgressResponse(p domain.OverallProgress) *OverallProgressResponse {
	return &OverallProgressResponse{
		AverageScore:      p.AverageScore,
		AveragePercentage: p.AveragePercentage,
		TotalQuizzesTaken: p.TotalQuizzesTaken,
	}
}
