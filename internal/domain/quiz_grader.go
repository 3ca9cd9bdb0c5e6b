package domain

import (
	"time"

	"vocab-builder/internal/util"
)

// GradeQuiz scores answers against quiz. Questions are graded in stored order;
// an answer is matched by question ID and the first answer for a question
// wins. Questions without a matching answer count as unanswered.
func GradeQuiz(quiz *Quiz, answers []SubmittedAnswer) *QuizResult {
	selections := make(map[string]*string, len(answers))
	for _, answer := range answers {
		if _, seen := selections[answer.QuestionID]; seen {
			continue
		}
		selections[answer.QuestionID] = answer.SelectedOptionID
	}

	score := 0
	results := make([]GradedQuestionResult, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		question := &quiz.Questions[i]

		selectedText := NotAnsweredText
		isCorrect := false
		if selected := selections[question.ID]; selected != nil {
			if text, ok := question.OptionText(*selected); ok {
				selectedText = text
			}
			isCorrect = *selected == question.CorrectOptionID
		}
		if isCorrect {
			score++
		}

		results = append(results, GradedQuestionResult{
			QuestionID:         question.ID,
			QuestionText:       question.Prompt,
			SelectedOptionText: selectedText,
			CorrectOptionText:  question.CorrectText(),
			IsCorrect:          isCorrect,
		})
	}

	return &QuizResult{
		ID:             util.NewULID(),
		OwnerID:        quiz.OwnerID,
		QuizID:         quiz.ID,
		Title:          quiz.Title,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		Results:        results,
		CreatedAt:      time.Now(),
	}
}
