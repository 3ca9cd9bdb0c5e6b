package handler

import (
	"vocab-builder/internal/domain"
	"vocab-builder/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the user set by middleware.Protected.
func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthorizedError("User not authenticated")
	}
	return userID, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	return nil
}
