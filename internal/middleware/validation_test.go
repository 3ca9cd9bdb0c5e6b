package middleware_test

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"vocab-builder/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestionCount(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/quiz", vm.ValidateQuestionCount(5, 50), func(c *fiber.Ctx) error {
		return c.SendString(strconv.Itoa(c.Locals(middleware.ValidatedCountKey).(int)))
	})

	tests := []struct {
		query  string
		status int
	}{
		{"", fiber.StatusOK},
		{"?count=10", fiber.StatusOK},
		{"?count=0", fiber.StatusBadRequest},
		{"?count=51", fiber.StatusBadRequest},
		{"?count=ten", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", "/quiz"+tt.query, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.query)
	}
}

func TestValidatePagination(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/results", vm.ValidatePagination(), func(c *fiber.Ctx) error {
		limit := c.Locals(middleware.ValidatedLimitKey).(int)
		offset := c.Locals(middleware.ValidatedOffsetKey).(int)
		return c.SendString(strconv.Itoa(limit) + "/" + strconv.Itoa(offset))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/results?limit=10&page=2", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/results?limit=1000", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/results?page=abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
