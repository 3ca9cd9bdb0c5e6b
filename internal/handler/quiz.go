package handler

import (
	"vocab-builder/internal/dto"
	"vocab-builder/internal/middleware"
	"vocab-builder/internal/service"
	"vocab-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// CreateQuiz godoc
// @Summary Generate a quiz
// @Description Builds a multiple-choice quiz from the user's vocabulary. Correct answers are not included.
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param count query int false "Number of questions" default(5)
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	count, _ := c.Locals(middleware.ValidatedCountKey).(int)

	quiz, err := h.service.CreateQuiz(c.UserContext(), userID, count)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// GetQuiz godoc
// @Summary Get an open quiz
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{quizId} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	quiz, err := h.service.GetQuiz(c.UserContext(), userID, c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// SubmitQuiz godoc
// @Summary Submit answers
// @Description Grades an open quiz once and stores the result. The quiz cannot be submitted again.
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SubmitQuizRequest true "Answers"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req dto.SubmitQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmitQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitQuiz(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetIncorrectAnswers godoc
// @Summary List incorrect answers
// @Description Every wrongly answered question across the user's graded quizzes, newest first.
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.IncorrectAnswersResponse
// @Router /quiz/incorrect-answers [get]
func (h *QuizHandler) GetIncorrectAnswers(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetIncorrectAnswers(c.UserContext(), userID, "")
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuizIncorrectAnswers godoc
// @Summary List incorrect answers of one quiz
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} dto.IncorrectAnswersResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{quizId}/incorrect-answers [get]
func (h *QuizHandler) GetQuizIncorrectAnswers(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetIncorrectAnswers(c.UserContext(), userID, c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
