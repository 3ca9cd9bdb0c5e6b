package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{"quiz not found", domain.NewQuizNotFoundError("q1"), 404, "QUIZ_NOT_FOUND", "Quiz not found"},
		{"word not found", domain.NewWordNotFoundError("w1"), 404, "WORD_NOT_FOUND", "Word not found or does not belong to the user"},
		{"result not found", domain.NewResultNotFoundError("r1"), 404, "RESULT_NOT_FOUND", "Quiz result not found"},
		{"quiz unavailable", domain.NewQuizUnavailableError(2, 5), 400, "QUIZ_UNAVAILABLE", "Not enough words to generate a quiz."},
		{"invalid credentials", domain.NewInvalidCredentialsError(), 401, "INVALID_CREDENTIALS", "Invalid credentials"},
		{"conflict", domain.NewConflictError("Username or email already exists"), 409, "CONFLICT", "Username or email already exists"},
		{"internal keeps cause private", domain.NewInternalError("Failed to submit quiz", errors.New("pq: connection reset")), 500, "INTERNAL_ERROR", "Failed to submit quiz"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed"), 405, "HTTP_ERROR", "Method Not Allowed"},
		{"unknown error", errors.New("boom"), 500, "INTERNAL_ERROR", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			assert.NotContains(t, string(body), "pq:")

			var errResp middleware.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &errResp))
			assert.Equal(t, tt.expectedCode, errResp.Code)
			assert.Equal(t, tt.expectedMessage, errResp.Message)
			assert.Equal(t, tt.expectedStatus, errResp.Status)
		})
	}
}

func TestErrorHandler_Details(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewQuizUnavailableError(2, 5) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, float64(2), errResp.Details["available"])
	assert.Equal(t, float64(5), errResp.Details["requested"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewMissingFieldError("word"), domain.NewMissingFieldError("definition")}
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "VALIDATION_ERROR", errResp.Code)
	assert.Equal(t, "word: word is required; definition: definition is required", errResp.Message)
	assert.Len(t, errResp.Errors, 2)
}
