package service

import (
	"context"
	"time"

	"vocab-builder/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockVocabularyRepository ---
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) Create(ctx context.Context, entry *domain.VocabularyEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockVocabularyRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.VocabularyEntry, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyEntry), args.Error(1)
}

func (m *MockVocabularyRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.VocabularyEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyEntry), args.Error(1)
}

func (m *MockVocabularyRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockVocabularyRepository) ExistsByWord(ctx context.Context, ownerID, word string) (bool, error) {
	args := m.Called(ctx, ownerID, word)
	return args.Bool(0), args.Error(1)
}

func (m *MockVocabularyRepository) Update(ctx context.Context, entry *domain.VocabularyEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockVocabularyRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

// --- MockQuizResultRepository ---
type MockQuizResultRepository struct {
	mock.Mock
}

func (m *MockQuizResultRepository) Create(ctx context.Context, result *domain.QuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockQuizResultRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.QuizResult, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizResult), args.Error(1)
}

func (m *MockQuizResultRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.QuizResult, int, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.QuizResult), args.Int(1), args.Error(2)
}

func (m *MockQuizResultRepository) Aggregate(ctx context.Context, ownerID string) (*domain.ScoreAggregate, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoreAggregate), args.Error(1)
}

func (m *MockQuizResultRepository) ExistsForQuiz(ctx context.Context, ownerID, quizID string) (bool, error) {
	args := m.Called(ctx, ownerID, quizID)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizResultRepository) ListIncorrectAnswers(ctx context.Context, ownerID, quizID string) ([]domain.IncorrectAnswer, error) {
	args := m.Called(ctx, ownerID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncorrectAnswer), args.Error(1)
}

// --- MockQuizStore ---
type MockQuizStore struct {
	mock.Mock
}

func (m *MockQuizStore) Save(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizStore) Get(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, ownerID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizStore) Claim(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, ownerID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizStore) Restore(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = "generated-user-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) GetDel(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// passthroughTx runs fn directly and counts the calls.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}
