package service

import (
	"context"
	"errors"
	"time"

	"vocab-builder/internal/cache"
	"vocab-builder/internal/domain"
	"vocab-builder/internal/dto"
	"vocab-builder/internal/logger"
	"vocab-builder/internal/util"

	"go.uber.org/zap"
)

const quizSubmittedMessage = "Quiz submitted and result saved successfully"

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	CreateQuiz(ctx context.Context, ownerID string, count int) (*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, ownerID, quizID string) (*dto.QuizResponse, error)
	SubmitQuiz(ctx context.Context, ownerID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	// GetIncorrectAnswers lists wrong answers across all results, or only the
	// result of quizID when it is not empty.
	GetIncorrectAnswers(ctx context.Context, ownerID, quizID string) (*dto.IncorrectAnswersResponse, error)
}

// quizService implements QuizService
type quizService struct {
	vocabRepo  domain.VocabularyRepository
	resultRepo domain.QuizResultRepository
	store      domain.QuizStore
	txManager  domain.TransactionManager
	cache      domain.Cache // optional, used to drop cached progress
	rnd        domain.RandomSource
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	vocabRepo domain.VocabularyRepository,
	resultRepo domain.QuizResultRepository,
	store domain.QuizStore,
	txManager domain.TransactionManager,
	cache domain.Cache,
	rnd domain.RandomSource,
) QuizService {
	if rnd == nil {
		rnd = util.NewLockedRand(0)
	}
	return &quizService{
		vocabRepo:  vocabRepo,
		resultRepo: resultRepo,
		store:      store,
		txManager:  txManager,
		cache:      cache,
		rnd:        rnd,
	}
}

// CreateQuiz implements QuizService
func (s *quizService) CreateQuiz(ctx context.Context, ownerID string, count int) (*dto.QuizResponse, error) {
	if count <= 0 {
		return nil, domain.NewInvalidInputError("count must be greater than 0")
	}

	vocabulary, err := s.vocabRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load vocabulary", err)
	}

	questions, err := domain.GenerateQuestions(vocabulary, count, s.rnd)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientVocabulary) {
			return nil, domain.NewQuizUnavailableError(len(vocabulary), count)
		}
		return nil, domain.NewInternalError("Failed to generate quiz", err)
	}

	quiz := &domain.Quiz{
		ID:        util.NewULID(),
		OwnerID:   ownerID,
		Title:     domain.GenerateQuizTitle(s.rnd),
		Questions: questions,
		CreatedAt: time.Now(),
	}
	if err := s.store.Save(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to generate and save quiz", err)
	}

	logger.Get().Info("Quiz created",
		zap.String("userID", ownerID),
		zap.String("quizID", quiz.ID),
		zap.Int("questions", len(questions)))

	return dto.ToQuizResponse(quiz), nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, ownerID, quizID string) (*dto.QuizResponse, error) {
	quiz, err := s.store.Get(ctx, ownerID, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return dto.ToQuizResponse(quiz), nil
}

// SubmitQuiz claims the open quiz, grades it and stores the result in one
// transaction. A second submission of the same quiz finds nothing to claim.
func (s *quizService) SubmitQuiz(ctx context.Context, ownerID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	answers := make([]domain.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.SubmittedAnswer{QuestionID: a.QuestionID, SelectedOptionID: a.SelectedOptionID})
	}

	var claimed *domain.Quiz
	var result *domain.QuizResult
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quiz, err := s.store.Claim(txCtx, ownerID, req.QuizID)
		if err != nil {
			return domain.NewInternalError("Failed to claim quiz", err)
		}
		if quiz == nil {
			return domain.NewQuizNotFoundError(req.QuizID)
		}
		claimed = quiz

		result = domain.GradeQuiz(quiz, answers)
		if err := s.resultRepo.Create(txCtx, result); err != nil {
			return domain.NewInternalError("Failed to submit quiz", err)
		}
		return nil
	})
	if err != nil {
		if claimed != nil {
			s.restoreQuiz(ctx, claimed, err)
		}
		return nil, err
	}

	invalidateProgress(ctx, s.cache, ownerID)

	logger.Get().Info("Quiz graded",
		zap.String("userID", ownerID),
		zap.String("quizID", result.QuizID),
		zap.String("resultID", result.ID),
		zap.Int("score", result.Score),
		zap.Int("totalQuestions", result.TotalQuestions))

	return &dto.SubmitQuizResponse{
		ResultID:       result.ID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Results:        dto.ToGradedQuestionResponses(result.Results),
		Message:        quizSubmittedMessage,
	}, nil
}

// restoreQuiz reopens a claimed quiz whose result was not stored. If that
// fails too the quiz is lost without a result, which is logged.
func (s *quizService) restoreQuiz(ctx context.Context, quiz *domain.Quiz, cause error) {
	if err := s.store.Restore(ctx, quiz); err != nil {
		logger.Get().Error("Quiz was claimed but neither graded nor restored",
			zap.String("userID", quiz.OwnerID),
			zap.String("quizID", quiz.ID),
			zap.NamedError("cause", cause),
			zap.Error(err))
		return
	}
	logger.Get().Warn("Restored quiz after failed submission",
		zap.String("userID", quiz.OwnerID),
		zap.String("quizID", quiz.ID),
		zap.Error(cause))
}

// GetIncorrectAnswers implements QuizService
func (s *quizService) GetIncorrectAnswers(ctx context.Context, ownerID, quizID string) (*dto.IncorrectAnswersResponse, error) {
	if quizID != "" {
		exists, err := s.resultRepo.ExistsForQuiz(ctx, ownerID, quizID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get incorrect answers for this quiz", err)
		}
		if !exists {
			return nil, domain.NewError(domain.CodeQuizNotFound, "Quiz not found or does not belong to the user", nil).
				WithContext("quizId", quizID)
		}
	}

	rows, err := s.resultRepo.ListIncorrectAnswers(ctx, ownerID, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get incorrect answers", err)
	}

	resp := &dto.IncorrectAnswersResponse{
		IncorrectAnswers: make([]dto.IncorrectAnswerResponse, 0, len(rows)),
		Total:            len(rows),
	}
	for _, r := range rows {
		resp.IncorrectAnswers = append(resp.IncorrectAnswers, dto.IncorrectAnswerResponse{
			ResultID:           r.ResultID,
			QuizID:             r.QuizID,
			QuestionID:         r.QuestionID,
			QuestionText:       r.QuestionText,
			SelectedOptionText: r.SelectedOptionText,
			CorrectOptionText:  r.CorrectOptionText,
			AnsweredAt:         r.CreatedAt,
		})
	}
	return resp, nil
}

// invalidateProgress drops the cached overall progress of ownerID. Failures
// are logged only.
func invalidateProgress(ctx context.Context, c domain.Cache, ownerID string) {
	if c == nil {
		return
	}
	progressVersion(ownerID).Add(1)
	if err := c.Delete(ctx, cache.OverallProgressKey(ownerID)); err != nil {
		logger.Get().Warn("Failed to invalidate progress cache",
			zap.String("userID", ownerID),
			zap.Error(err))
	}
}
