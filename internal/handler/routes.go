package handler

import (
	"vocab-builder/internal/middleware"
	"vocab-builder/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Routes bundles what RegisterRoutes needs.
type Routes struct {
	AuthService     service.AuthService
	Auth            *AuthHandler
	User            *UserHandler
	Vocabulary      *VocabularyHandler
	Quiz            *QuizHandler
	Progress        *ProgressHandler
	Health          *HealthHandler
	DefaultQuizSize int
	MaxQuizSize     int
}

// RegisterRoutes mounts the HTTP API on app.
func RegisterRoutes(app *fiber.App, r Routes) {
	protected := middleware.Protected(r.AuthService)
	vm := middleware.NewValidationMiddleware()

	if r.Health != nil {
		app.Get("/health", r.Health.Health)
	}

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/signup", r.Auth.Signup)
	authGroup.Post("/login", r.Auth.Login)
	authGroup.Post("/refresh", r.Auth.RefreshToken)
	authGroup.Post("/logout", protected, r.Auth.Logout)

	userGroup := api.Group("/user", protected)
	userGroup.Get("/profile", r.User.GetMyProfile)
	userGroup.Patch("/profile", r.User.UpdateMyProfile)
	userGroup.Post("/change-password", r.User.ChangePassword)

	wordGroup := api.Group("/words", protected)
	wordGroup.Post("/", r.Vocabulary.AddWord)
	wordGroup.Get("/", r.Vocabulary.ListWords)
	wordGroup.Put("/:id", r.Vocabulary.UpdateWord)
	wordGroup.Delete("/:id", r.Vocabulary.DeleteWord)

	// static segments are registered before /:quizId
	quizGroup := api.Group("/quiz", protected)
	quizGroup.Get("/", vm.ValidateQuestionCount(r.DefaultQuizSize, r.MaxQuizSize), r.Quiz.CreateQuiz)
	quizGroup.Post("/submit", r.Quiz.SubmitQuiz)
	quizGroup.Get("/incorrect-answers", r.Quiz.GetIncorrectAnswers)
	quizGroup.Get("/:quizId/incorrect-answers", r.Quiz.GetQuizIncorrectAnswers)
	quizGroup.Get("/:quizId", r.Quiz.GetQuiz)

	progressGroup := api.Group("/progress", protected)
	progressGroup.Get("/", r.Progress.GetOverallProgress)
	progressGroup.Get("/summary", r.Progress.GetSummary)
	progressGroup.Post("/quiz-results", r.Progress.RecordQuizResult)
	progressGroup.Get("/quiz-results", vm.ValidatePagination(), r.Progress.ListQuizResults)
	progressGroup.Get("/quiz-results/:id", r.Progress.GetQuizResult)
}
