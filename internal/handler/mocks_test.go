package handler_test

import (
	"context"
	"errors"
	"time"

	"vocab-builder/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

const testToken = "good-token"

type fakeAuthService struct {
	SignupFunc  func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	LoginFunc   func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LogoutFunc  func(ctx context.Context, claims *dto.AuthClaims) error
	RefreshFunc func(ctx context.Context, token string) (*dto.AuthResponse, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	return f.SignupFunc(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return f.LoginFunc(ctx, req)
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, token string) (*dto.AuthResponse, error) {
	return f.RefreshFunc(ctx, token)
}

func (f *fakeAuthService) Logout(ctx context.Context, claims *dto.AuthClaims) error {
	return f.LogoutFunc(ctx, claims)
}

func (f *fakeAuthService) CreateJWT(ctx context.Context, userID string, ttl time.Duration, tokenType string) (string, error) {
	return "", errors.New("not implemented")
}

// ValidateJWT accepts testToken as an access token of user1.
func (f *fakeAuthService) ValidateJWT(ctx context.Context, token string) (*dto.AuthClaims, error) {
	if token != testToken {
		return nil, errors.New("invalid jwt token")
	}
	return &dto.AuthClaims{
		UserID:    "user1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, nil
}

type fakeQuizService struct {
	CreateQuizFunc          func(ctx context.Context, ownerID string, count int) (*dto.QuizResponse, error)
	GetQuizFunc             func(ctx context.Context, ownerID, quizID string) (*dto.QuizResponse, error)
	SubmitQuizFunc          func(ctx context.Context, ownerID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	GetIncorrectAnswersFunc func(ctx context.Context, ownerID, quizID string) (*dto.IncorrectAnswersResponse, error)
}

func (f *fakeQuizService) CreateQuiz(ctx context.Context, ownerID string, count int) (*dto.QuizResponse, error) {
	return f.CreateQuizFunc(ctx, ownerID, count)
}

func (f *fakeQuizService) GetQuiz(ctx context.Context, ownerID, quizID string) (*dto.QuizResponse, error) {
	return f.GetQuizFunc(ctx, ownerID, quizID)
}

func (f *fakeQuizService) SubmitQuiz(ctx context.Context, ownerID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	return f.SubmitQuizFunc(ctx, ownerID, req)
}

func (f *fakeQuizService) GetIncorrectAnswers(ctx context.Context, ownerID, quizID string) (*dto.IncorrectAnswersResponse, error) {
	return f.GetIncorrectAnswersFunc(ctx, ownerID, quizID)
}

type fakeProgressService struct {
	GetOverallProgressFunc func(ctx context.Context, ownerID string) (*dto.OverallProgressResponse, error)
	GetSummaryFunc         func(ctx context.Context, ownerID string) (*dto.ProgressSummaryResponse, error)
	RecordQuizResultFunc   func(ctx context.Context, ownerID string, req *dto.RecordQuizResultRequest) (*dto.RecordQuizResultResponse, error)
	ListQuizResultsFunc    func(ctx context.Context, ownerID string, limit, offset int) (*dto.QuizResultsResponse, error)
	GetQuizResultFunc      func(ctx context.Context, ownerID, resultID string) (*dto.QuizResultResponse, error)
}

func (f *fakeProgressService) GetOverallProgress(ctx context.Context, ownerID string) (*dto.OverallProgressResponse, error) {
	return f.GetOverallProgressFunc(ctx, ownerID)
}

func (f *fakeProgressService) GetSummary(ctx context.Context, ownerID string) (*dto.ProgressSummaryResponse, error) {
	return f.GetSummaryFunc(ctx, ownerID)
}

func (f *fakeProgressService) RecordQuizResult(ctx context.Context, ownerID string, req *dto.RecordQuizResultRequest) (*dto.RecordQuizResultResponse, error) {
	return f.RecordQuizResultFunc(ctx, ownerID, req)
}

func (f *fakeProgressService) ListQuizResults(ctx context.Context, ownerID string, limit, offset int) (*dto.QuizResultsResponse, error) {
	return f.ListQuizResultsFunc(ctx, ownerID, limit, offset)
}

func (f *fakeProgressService) GetQuizResult(ctx context.Context, ownerID, resultID string) (*dto.QuizResultResponse, error) {
	return f.GetQuizResultFunc(ctx, ownerID, resultID)
}

type fakeVocabularyService struct {
	AddWordFunc    func(ctx context.Context, ownerID string, req *dto.WordRequest) (*dto.WordMutationResponse, error)
	ListWordsFunc  func(ctx context.Context, ownerID string) ([]dto.WordResponse, error)
	UpdateWordFunc func(ctx context.Context, ownerID, wordID string, req *dto.WordRequest) (*dto.WordMutationResponse, error)
	DeleteWordFunc func(ctx context.Context, ownerID, wordID string) (*dto.DeleteWordResponse, error)
}

func (f *fakeVocabularyService) AddWord(ctx context.Context, ownerID string, req *dto.WordRequest) (*dto.WordMutationResponse, error) {
	return f.AddWordFunc(ctx, ownerID, req)
}

func (f *fakeVocabularyService) ListWords(ctx context.Context, ownerID string) ([]dto.WordResponse, error) {
	return f.ListWordsFunc(ctx, ownerID)
}

func (f *fakeVocabularyService) UpdateWord(ctx context.Context, ownerID, wordID string, req *dto.WordRequest) (*dto.WordMutationResponse, error) {
	return f.UpdateWordFunc(ctx, ownerID, wordID, req)
}

func (f *fakeVocabularyService) DeleteWord(ctx context.Context, ownerID, wordID string) (*dto.DeleteWordResponse, error) {
	return f.DeleteWordFunc(ctx, ownerID, wordID)
}

type fakeUserService struct {
	GetUserProfileFunc    func(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	UpdateUserProfileFunc func(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
	ChangePasswordFunc    func(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

func (f *fakeUserService) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	return f.GetUserProfileFunc(ctx, userID)
}

func (f *fakeUserService) UpdateUserProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	return f.UpdateUserProfileFunc(ctx, userID, req)
}

func (f *fakeUserService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	return f.ChangePasswordFunc(ctx, userID, req)
}
