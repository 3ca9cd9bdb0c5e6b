package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vocab-builder/internal/cache"
	"vocab-builder/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:      "quiz1",
		OwnerID: "user1",
		Title:   "Word Wizard: Word Mastery",
		Questions: []domain.QuizQuestion{{
			ID:     "q1",
			Prompt: "Serendipity",
			Options: []domain.QuizOption{
				{ID: "o1", Text: "Finding something good without looking for it"},
				{ID: "o2", Text: "Sweet sounding"},
			},
			CorrectOptionID: "o1",
		}},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisQuizStore_SaveAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisQuizStore(NewRedisCacheAdapter(db), time.Hour)
	ctx := context.Background()

	quiz := testQuiz()
	payload, err := json.Marshal(quiz)
	require.NoError(t, err)
	key := cache.OpenQuizKey("user1", "quiz1")

	mock.ExpectSet(key, string(payload), time.Hour).SetVal("OK")
	require.NoError(t, store.Save(ctx, quiz))

	mock.ExpectGet(key).SetVal(string(payload))
	got, err := store.Get(ctx, "user1", "quiz1")
	require.NoError(t, err)
	assert.Equal(t, quiz, got)

	mock.ExpectGet(cache.OpenQuizKey("user2", "quiz1")).RedisNil()
	got, err = store.Get(ctx, "user2", "quiz1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisQuizStore_Claim(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisQuizStore(NewRedisCacheAdapter(db), time.Hour)
	ctx := context.Background()

	quiz := testQuiz()
	payload, _ := json.Marshal(quiz)
	key := cache.OpenQuizKey("user1", "quiz1")

	t.Run("first claim receives the quiz", func(t *testing.T) {
		mock.ExpectGetDel(key).SetVal(string(payload))
		got, err := store.Claim(ctx, "user1", "quiz1")
		require.NoError(t, err)
		assert.Equal(t, "quiz1", got.ID)
	})

	t.Run("second claim finds nothing", func(t *testing.T) {
		mock.ExpectGetDel(key).RedisNil()
		got, err := store.Claim(ctx, "user1", "quiz1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("redis failure", func(t *testing.T) {
		mock.ExpectGetDel(key).SetErr(errors.New("connection reset"))
		got, err := store.Claim(ctx, "user1", "quiz1")
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		mock.ExpectGetDel(key).SetVal("{not json")
		_, err := store.Claim(ctx, "user1", "quiz1")
		assert.Error(t, err)
	})

	t.Run("restore saves again", func(t *testing.T) {
		mock.ExpectSet(key, string(payload), time.Hour).SetVal("OK")
		assert.NoError(t, store.Restore(ctx, quiz))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
