package handler

import (
	"vocab-builder/internal/dto"
	"vocab-builder/internal/service"
	"vocab-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// VocabularyHandler handles the word list of the authenticated user.
type VocabularyHandler struct {
	service   service.VocabularyService
	validator *validation.Validator
}

func NewVocabularyHandler(service service.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{service: service, validator: validation.NewValidator()}
}

// AddWord godoc
// @Summary Add a word
// @Tags words
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.WordRequest true "Word"
// @Success 201 {object} dto.WordMutationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /words [post]
func (h *VocabularyHandler) AddWord(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req dto.WordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateWordRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.AddWord(c.UserContext(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListWords godoc
// @Summary List words
// @Description Returns the user's words, most recently added first.
// @Tags words
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.WordResponse
// @Router /words [get]
func (h *VocabularyHandler) ListWords(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	words, err := h.service.ListWords(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(words)
}

// UpdateWord godoc
// @Summary Update a word
// @Tags words
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Word ID"
// @Param request body dto.WordRequest true "Word"
// @Success 200 {object} dto.WordMutationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /words/{id} [put]
func (h *VocabularyHandler) UpdateWord(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req dto.WordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateWordRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateWord(c.UserContext(), userID, c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteWord godoc
// @Summary Delete a word
// @Tags words
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Word ID"
// @Success 200 {object} dto.DeleteWordResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /words/{id} [delete]
func (h *VocabularyHandler) DeleteWord(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.DeleteWord(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
