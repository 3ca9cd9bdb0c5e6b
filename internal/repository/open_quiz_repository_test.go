package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"vocab-builder/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var openQuizRowColumns = []string{"id", "owner_id", "title", "payload", "created_at", "expires_at"}

func fixedStore(t *testing.T) (*SQLXQuizStore, sqlmock.Sqlmock, time.Time) {
	db, mock := setupTestDB(t)
	store := NewSQLXQuizStore(db, time.Hour)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, mock, now
}

func openQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:      "quiz1",
		OwnerID: "user1",
		Title:   "Verbal Voyage: Unlock New Words",
		Questions: []domain.QuizQuestion{{
			ID:              "q1",
			Prompt:          "Mellifluous",
			Options:         []domain.QuizOption{{ID: "o1", Text: "Sweet sounding"}, {ID: "o2", Text: "Harmful"}},
			CorrectOptionID: "o1",
		}},
		CreatedAt: time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC),
	}
}

func openQuizRow(q *domain.Quiz, expires time.Time) *sqlmock.Rows {
	payload, _ := json.Marshal(q.Questions)
	return sqlmock.NewRows(openQuizRowColumns).AddRow(q.ID, q.OwnerID, q.Title, string(payload), q.CreatedAt, expires)
}

func TestSQLXQuizStore_Save(t *testing.T) {
	store, mock, now := fixedStore(t)
	quiz := openQuiz()
	payload, _ := json.Marshal(quiz.Questions)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO open_quizzes (id, owner_id, title, payload, created_at, expires_at) VALUES (?, ?, ?, ?, ?, ?)")).
		WithArgs("quiz1", "user1", quiz.Title, string(payload), quiz.CreatedAt, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Save(context.Background(), quiz))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizStore_Get(t *testing.T) {
	store, mock, now := fixedStore(t)
	quiz := openQuiz()
	query := regexp.QuoteMeta("FROM open_quizzes WHERE id = ? AND owner_id = ? AND expires_at > ?")

	mock.ExpectQuery(query).WithArgs("quiz1", "user1", now).WillReturnRows(openQuizRow(quiz, now.Add(time.Hour)))
	got, err := store.Get(context.Background(), "user1", "quiz1")
	require.NoError(t, err)
	assert.Equal(t, quiz, got)

	mock.ExpectQuery(query).WithArgs("quiz1", "user2", now).WillReturnError(sql.ErrNoRows)
	got, err = store.Get(context.Background(), "user2", "quiz1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizStore_Claim(t *testing.T) {
	quiz := openQuiz()
	selectQuery := regexp.QuoteMeta("FROM open_quizzes WHERE id = ? AND owner_id = ?")
	deleteQuery := regexp.QuoteMeta("DELETE FROM open_quizzes WHERE id = ? AND owner_id = ?")

	t.Run("claims an open quiz", func(t *testing.T) {
		store, mock, now := fixedStore(t)
		mock.ExpectQuery(selectQuery).WillReturnRows(openQuizRow(quiz, now.Add(time.Hour)))
		mock.ExpectExec(deleteQuery).WithArgs("quiz1", "user1").WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := store.Claim(context.Background(), "user1", "quiz1")
		require.NoError(t, err)
		assert.Equal(t, "quiz1", got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost the race to another claim", func(t *testing.T) {
		store, mock, now := fixedStore(t)
		mock.ExpectQuery(selectQuery).WillReturnRows(openQuizRow(quiz, now.Add(time.Hour)))
		mock.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 0))

		got, err := store.Claim(context.Background(), "user1", "quiz1")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent quiz skips the delete", func(t *testing.T) {
		store, mock, _ := fixedStore(t)
		mock.ExpectQuery(selectQuery).WillReturnError(sql.ErrNoRows)

		got, err := store.Claim(context.Background(), "user1", "quiz1")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs inside the transaction from context", func(t *testing.T) {
		db, mock := setupTestDB(t)
		store := NewSQLXQuizStore(db, time.Hour)
		txManager := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectQuery(selectQuery).WillReturnRows(openQuizRow(quiz, time.Now().Add(time.Hour)))
		mock.ExpectExec(deleteQuery).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		failure := errors.New("result insert failed")
		err := txManager.WithTransaction(context.Background(), func(ctx context.Context) error {
			got, err := store.Claim(ctx, "user1", "quiz1")
			require.NoError(t, err)
			require.NotNil(t, got)
			return failure
		})
		assert.ErrorIs(t, err, failure)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXQuizStore_Restore(t *testing.T) {
	store, mock, _ := fixedStore(t)
	quiz := openQuiz()
	countQuery := regexp.QuoteMeta("SELECT COUNT(*) FROM open_quizzes WHERE id = ?")

	mock.ExpectQuery(countQuery).WithArgs("quiz1").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	require.NoError(t, store.Restore(context.Background(), quiz))

	mock.ExpectQuery(countQuery).WithArgs("quiz1").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO open_quizzes").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, store.Restore(context.Background(), quiz))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizStore_DeleteExpired(t *testing.T) {
	store, mock, now := fixedStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM open_quizzes WHERE expires_at <= ?")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := store.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
