package handler

import (
	"vocab-builder/internal/dto"
	"vocab-builder/internal/middleware"
	"vocab-builder/internal/service"
	"vocab-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProgressHandler serves quiz statistics and stored results.
type ProgressHandler struct {
	service   service.ProgressService
	validator *validation.Validator
}

func NewProgressHandler(service service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service, validator: validation.NewValidator()}
}

// GetOverallProgress godoc
// @Summary Overall progress
// @Description Average raw score and percentage over all graded quizzes.
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.OverallProgressResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) GetOverallProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetOverallProgress(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSummary godoc
// @Summary Progress summary
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ProgressSummaryResponse
// @Router /progress/summary [get]
func (h *ProgressHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetSummary(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RecordQuizResult godoc
// @Summary Record a quiz result
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.RecordQuizResultRequest true "Score"
// @Success 201 {object} dto.RecordQuizResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /progress/quiz-results [post]
func (h *ProgressHandler) RecordQuizResult(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req dto.RecordQuizResultRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateRecordQuizResultRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.RecordQuizResult(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuizResults godoc
// @Summary List quiz results
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Items per page" default(20)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuizResultsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /progress/quiz-results [get]
func (h *ProgressHandler) ListQuizResults(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	limit, _ := c.Locals(middleware.ValidatedLimitKey).(int)
	offset, _ := c.Locals(middleware.ValidatedOffsetKey).(int)
	if limit == 0 {
		limit = validation.DefaultPageLimit
	}

	resp, err := h.service.ListQuizResults(c.UserContext(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuizResult godoc
// @Summary Get a quiz result
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Result ID"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /progress/quiz-results/{id} [get]
func (h *ProgressHandler) GetQuizResult(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetQuizResult(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
