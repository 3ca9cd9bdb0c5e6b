package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vocab-builder/internal/cache"
	"vocab-builder/internal/domain"
	"vocab-builder/internal/dto"
	"vocab-builder/internal/logger"
	"vocab-builder/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const recentResultsLimit = 5

// ProgressService aggregates a user's quiz results.
type ProgressService interface {
	GetOverallProgress(ctx context.Context, ownerID string) (*dto.OverallProgressResponse, error)
	GetSummary(ctx context.Context, ownerID string) (*dto.ProgressSummaryResponse, error)
	RecordQuizResult(ctx context.Context, ownerID string, req *dto.RecordQuizResultRequest) (*dto.RecordQuizResultResponse, error)
	ListQuizResults(ctx context.Context, ownerID string, limit, offset int) (*dto.QuizResultsResponse, error)
	GetQuizResult(ctx context.Context, ownerID, resultID string) (*dto.QuizResultResponse, error)
}

type progressService struct {
	resultRepo domain.QuizResultRepository
	vocabRepo  domain.VocabularyRepository
	cache      domain.Cache
	cacheTTL   time.Duration
	sfGroup    singleflight.Group
}

// NewProgressService creates a ProgressService. cache may be nil, in which
// case every request hits the database.
func NewProgressService(resultRepo domain.QuizResultRepository, vocabRepo domain.VocabularyRepository, cache domain.Cache, cacheTTL time.Duration) ProgressService {
	return &progressService{
		resultRepo: resultRepo,
		vocabRepo:  vocabRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (s *progressService) GetOverallProgress(ctx context.Context, ownerID string) (*dto.OverallProgressResponse, error) {
	key := cache.OverallProgressKey(ownerID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var resp dto.OverallProgressResponse
			jsonErr := json.Unmarshal([]byte(cached), &resp)
			if jsonErr == nil {
				return &resp, nil
			}
			logger.Get().Warn("Discarding undecodable progress cache entry", zap.String("key", key), zap.Error(jsonErr))
		case errors.Is(err, domain.ErrCacheMiss):
		default:
			logger.Get().Warn("Progress cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	// concurrent misses for one owner share a single aggregate query; the
	// shared load must outlive the first caller's cancellation
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		return s.loadOverallProgress(loadCtx, ownerID, key)
	})
	if err != nil {
		return nil, err
	}
	resp := *v.(*dto.OverallProgressResponse)
	return &resp, nil
}

func (s *progressService) loadOverallProgress(ctx context.Context, ownerID, key string) (*dto.OverallProgressResponse, error) {
	version := progressVersion(ownerID)
	startVersion := version.Load()

	agg, err := s.resultRepo.Aggregate(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve overall progress", err)
	}
	if agg == nil {
		agg = &domain.ScoreAggregate{}
	}
	resp := dto.ToOverallProgressResponse(agg.Progress())

	if s.cache == nil || version.Load() != startVersion {
		return resp, nil
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return resp, nil
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		logger.Get().Warn("Progress cache write failed", zap.String("key", key), zap.Error(err))
		return resp, nil
	}
	// an invalidation that landed between the check and the write
	if version.Load() != startVersion {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Failed to drop stale progress cache entry", zap.String("key", key), zap.Error(err))
		}
	}
	return resp, nil
}

// GetSummary loads progress, vocabulary size and the latest results concurrently.
func (s *progressService) GetSummary(ctx context.Context, ownerID string) (*dto.ProgressSummaryResponse, error) {
	var (
		overall    *dto.OverallProgressResponse
		vocabCount int
		recent     []domain.QuizResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overall, err = s.GetOverallProgress(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		vocabCount, err = s.vocabRepo.CountByOwner(gctx, ownerID)
		if err != nil {
			return domain.NewInternalError("Failed to count vocabulary", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, _, err = s.resultRepo.ListByOwner(gctx, ownerID, recentResultsLimit, 0)
		if err != nil {
			return domain.NewInternalError("Failed to retrieve quiz results", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.ProgressSummaryResponse{
		Overall:         *overall,
		VocabularyCount: vocabCount,
		RecentResults:   make([]dto.QuizResultResponse, 0, len(recent)),
	}
	for i := range recent {
		resp.RecentResults = append(resp.RecentResults, dto.ToQuizResultResponse(&recent[i]))
	}
	return resp, nil
}

func (s *progressService) RecordQuizResult(ctx context.Context, ownerID string, req *dto.RecordQuizResultRequest) (*dto.RecordQuizResultResponse, error) {
	result, err := domain.NewManualQuizResult(ownerID, req.Score, req.TotalQuestions)
	if err != nil {
		return nil, err
	}
	result.ID = util.NewULID()

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, domain.NewInternalError("Failed to record quiz result", err)
	}
	invalidateProgress(ctx, s.cache, ownerID)

	return &dto.RecordQuizResultResponse{
		Message: "Quiz result recorded successfully",
		Result:  dto.ToQuizResultResponse(result),
	}, nil
}

func (s *progressService) ListQuizResults(ctx context.Context, ownerID string, limit, offset int) (*dto.QuizResultsResponse, error) {
	results, total, err := s.resultRepo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve quiz results", err)
	}

	resp := &dto.QuizResultsResponse{
		Results:        make([]dto.QuizResultResponse, 0, len(results)),
		PaginationInfo: newPaginationInfo(total, limit, offset),
	}
	for i := range results {
		resp.Results = append(resp.Results, dto.ToQuizResultResponse(&results[i]))
	}
	return resp, nil
}

func (s *progressService) GetQuizResult(ctx context.Context, ownerID, resultID string) (*dto.QuizResultResponse, error) {
	result, err := s.resultRepo.GetByID(ctx, ownerID, resultID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve quiz result", err)
	}
	if result == nil {
		return nil, domain.NewResultNotFoundError(resultID)
	}
	resp := dto.ToQuizResultResponse(result)
	return &resp, nil
}

func newPaginationInfo(total, limit, offset int) dto.PaginationInfo {
	info := dto.PaginationInfo{TotalItems: total, Limit: limit, Offset: offset}
	if limit > 0 {
		info.CurrentPage = offset/limit + 1
		info.TotalPages = (total + limit - 1) / limit
	}
	return info
}
