package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vocab-builder/internal/cache"
	"vocab-builder/internal/domain"
)

// RedisQuizStore keeps open quizzes as JSON values that expire after ttl.
type RedisQuizStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewRedisQuizStore creates a quiz store on top of the cache port.
func NewRedisQuizStore(c domain.Cache, ttl time.Duration) domain.QuizStore {
	return &RedisQuizStore{cache: c, ttl: ttl}
}

func (s *RedisQuizStore) Save(ctx context.Context, quiz *domain.Quiz) error {
	payload, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz %s: %w", quiz.ID, err)
	}
	if err := s.cache.Set(ctx, cache.OpenQuizKey(quiz.OwnerID, quiz.ID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("failed to save quiz %s: %w", quiz.ID, err)
	}
	return nil
}

func (s *RedisQuizStore) Get(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error) {
	val, err := s.cache.Get(ctx, cache.OpenQuizKey(ownerID, quizID))
	return decodeQuiz(quizID, val, err)
}

// Claim uses GETDEL so that concurrent submissions of one quiz see it at most once.
func (s *RedisQuizStore) Claim(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error) {
	val, err := s.cache.GetDel(ctx, cache.OpenQuizKey(ownerID, quizID))
	return decodeQuiz(quizID, val, err)
}

// Restore saves the quiz again with a fresh ttl.
func (s *RedisQuizStore) Restore(ctx context.Context, quiz *domain.Quiz) error {
	return s.Save(ctx, quiz)
}

func decodeQuiz(quizID, val string, err error) (*domain.Quiz, error) {
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load quiz %s: %w", quizID, err)
	}
	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(val), &quiz); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz %s: %w", quizID, err)
	}
	return &quiz, nil
}
