package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const openQuizColumns = `id, owner_id, title, payload, created_at, expires_at`

// SQLXQuizStore keeps open quizzes in the open_quizzes table. Claim deletes
// the row with the executor found in ctx, so running it in the same
// transaction as the result insert makes grading all-or-nothing.
type SQLXQuizStore struct {
	db  DBTX
	ttl time.Duration
	now func() time.Time
}

// NewSQLXQuizStore creates a database-backed quiz store. Quizzes older than
// ttl are treated as absent.
func NewSQLXQuizStore(db *sqlx.DB, ttl time.Duration) *SQLXQuizStore {
	return &SQLXQuizStore{db: db, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

var _ domain.QuizStore = (*SQLXQuizStore)(nil)

func (s *SQLXQuizStore) Save(ctx context.Context, quiz *domain.Quiz) error {
	payload, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz %s: %w", quiz.ID, err)
	}
	exec := GetExecutor(ctx, s.db)
	query := exec.Rebind(`INSERT INTO open_quizzes (` + openQuizColumns + `) VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query,
		quiz.ID,
		quiz.OwnerID,
		quiz.Title,
		string(payload),
		quiz.CreatedAt,
		s.now().Add(s.ttl),
	); err != nil {
		return fmt.Errorf("failed to save quiz %s: %w", quiz.ID, err)
	}
	return nil
}

func (s *SQLXQuizStore) load(ctx context.Context, exec DBTX, ownerID, quizID string) (*domain.Quiz, error) {
	var m models.OpenQuiz
	query := exec.Rebind(`SELECT ` + openQuizColumns + ` FROM open_quizzes WHERE id = ? AND owner_id = ? AND expires_at > ?`)
	if err := exec.GetContext(ctx, &m, query, quizID, ownerID, s.now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load quiz %s: %w", quizID, err)
	}

	quiz := &domain.Quiz{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}
	if err := json.Unmarshal([]byte(m.Payload), &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz %s: %w", quizID, err)
	}
	return quiz, nil
}

func (s *SQLXQuizStore) Get(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error) {
	return s.load(ctx, GetExecutor(ctx, s.db), ownerID, quizID)
}

// Claim reads the quiz and deletes it. Only the caller whose DELETE removes
// the row receives the quiz.
func (s *SQLXQuizStore) Claim(ctx context.Context, ownerID, quizID string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, s.db)
	quiz, err := s.load(ctx, exec, ownerID, quizID)
	if err != nil || quiz == nil {
		return nil, err
	}

	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM open_quizzes WHERE id = ? AND owner_id = ?`), quizID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim quiz %s: %w", quizID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected != 1 {
		return nil, nil
	}
	return quiz, nil
}

// Restore re-inserts a claimed quiz unless a rolled back transaction already
// brought it back.
func (s *SQLXQuizStore) Restore(ctx context.Context, quiz *domain.Quiz) error {
	exec := GetExecutor(ctx, s.db)
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM open_quizzes WHERE id = ?`)
	if err := exec.GetContext(ctx, &count, query, quiz.ID); err != nil {
		return fmt.Errorf("failed to check quiz %s: %w", quiz.ID, err)
	}
	if count > 0 {
		return nil
	}
	return s.Save(ctx, quiz)
}

// DeleteExpired removes quizzes whose ttl has passed and returns how many were removed.
func (s *SQLXQuizStore) DeleteExpired(ctx context.Context) (int64, error) {
	exec := GetExecutor(ctx, s.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM open_quizzes WHERE expires_at <= ?`), s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired quizzes: %w", err)
	}
	return result.RowsAffected()
}
