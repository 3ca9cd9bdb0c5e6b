package middleware

import (
	"vocab-builder/internal/dto"
	"vocab-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedCountKey  = "validated_count"
	ValidatedLimitKey  = "validated_limit"
	ValidatedOffsetKey = "validated_offset"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuestionCount validates the count query parameter of quiz creation
func (vm *ValidationMiddleware) ValidateQuestionCount(defaultCount, maxCount int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, errs := vm.validator.ValidateQuestionCount(c.Query("count"), defaultCount, maxCount)
		if len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}
		c.Locals(ValidatedCountKey, count)
		return c.Next()
	}
}

// ValidatePagination validates limit and page query parameters
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p dto.Pagination
		if err := c.QueryParser(&p); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid pagination parameters")
		}
		limit, offset, errs := vm.validator.ValidatePagination(&p)
		if len(errs) > 0 {
			return errs
		}
		c.Locals(ValidatedLimitKey, limit)
		c.Locals(ValidatedOffsetKey, offset)
		return c.Next()
	}
}
