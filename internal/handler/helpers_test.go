package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vocab-builder/internal/handler"
	"vocab-builder/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	auth     *fakeAuthService
	user     *fakeUserService
	vocab    *fakeVocabularyService
	quiz     *fakeQuizService
	progress *fakeProgressService
	health   map[string]handler.HealthCheck
}

func newTestServices() *testServices {
	return &testServices{
		auth:     &fakeAuthService{},
		user:     &fakeUserService{},
		vocab:    &fakeVocabularyService{},
		quiz:     &fakeQuizService{},
		progress: &fakeProgressService{},
	}
}

func (s *testServices) app() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.RegisterRoutes(app, handler.Routes{
		AuthService:     s.auth,
		Auth:            handler.NewAuthHandler(s.auth),
		User:            handler.NewUserHandler(s.user),
		Vocabulary:      handler.NewVocabularyHandler(s.vocab),
		Quiz:            handler.NewQuizHandler(s.quiz),
		Progress:        handler.NewProgressHandler(s.progress),
		Health:          handler.NewHealthHandler(s.health),
		DefaultQuizSize: 5,
		MaxQuizSize:     50,
	})
	return app
}

func newJSONRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewBuffer(data)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, authenticated bool) (*http.Response, []byte) {
	t.Helper()
	req := newJSONRequest(t, method, path, body)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	return send(t, app, req)
}
