package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/repository/models"
	"vocab-builder/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	quizResultColumns     = `id, owner_id, quiz_id, title, score, total_questions, created_at`
	quizResultItemColumns = `id, result_id, position, question_id, question_text, selected_option_text, correct_option_text, is_correct`
)

type sqlxQuizResultRepository struct {
	db DBTX
}

// NewSQLXQuizResultRepository creates a quiz result repository backed by db.
func NewSQLXQuizResultRepository(db *sqlx.DB) domain.QuizResultRepository {
	return &sqlxQuizResultRepository{db: db}
}

func toDomainQuizResult(m models.QuizResult, items []models.QuizResultItem) domain.QuizResult {
	result := domain.QuizResult{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		QuizID:         util.NullStringToString(m.QuizID),
		Title:          util.NullStringToString(m.Title),
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		CreatedAt:      m.CreatedAt,
	}
	if len(items) > 0 {
		result.Results = make([]domain.GradedQuestionResult, 0, len(items))
		for _, item := range items {
			result.Results = append(result.Results, domain.GradedQuestionResult{
				QuestionID:         item.QuestionID,
				QuestionText:       item.QuestionText,
				SelectedOptionText: item.SelectedOptionText,
				CorrectOptionText:  item.CorrectOptionText,
				IsCorrect:          item.IsCorrect != 0,
			})
		}
	}
	return result
}

// Create inserts the result row followed by one row per graded question.
// Callers that store per-question rows run it inside a transaction.
func (r *sqlxQuizResultRepository) Create(ctx context.Context, result *domain.QuizResult) error {
	if result.ID == "" {
		result.ID = util.NewULID()
	}
	exec := GetExecutor(ctx, r.db)

	query := exec.Rebind(`INSERT INTO quiz_results (` + quizResultColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query,
		result.ID,
		result.OwnerID,
		util.StringToNullString(result.QuizID),
		util.StringToNullString(result.Title),
		result.Score,
		result.TotalQuestions,
		result.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create quiz result: %w", err)
	}

	itemQuery := exec.Rebind(`INSERT INTO quiz_result_items (` + quizResultItemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	for i, graded := range result.Results {
		if _, err := exec.ExecContext(ctx, itemQuery,
			util.NewULID(),
			result.ID,
			i,
			graded.QuestionID,
			graded.QuestionText,
			graded.SelectedOptionText,
			graded.CorrectOptionText,
			util.BoolToInt(graded.IsCorrect),
		); err != nil {
			return fmt.Errorf("failed to create quiz result item %d: %w", i, err)
		}
	}
	return nil
}

// GetByID loads a result with its per-question rows in quiz order.
func (r *sqlxQuizResultRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.QuizResult, error) {
	exec := GetExecutor(ctx, r.db)

	var m models.QuizResult
	query := exec.Rebind(`SELECT ` + quizResultColumns + ` FROM quiz_results WHERE id = ? AND owner_id = ?`)
	if err := exec.GetContext(ctx, &m, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz result: %w", err)
	}

	var items []models.QuizResultItem
	itemQuery := exec.Rebind(`SELECT ` + quizResultItemColumns + ` FROM quiz_result_items WHERE result_id = ? ORDER BY position`)
	if err := exec.SelectContext(ctx, &items, itemQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get quiz result items: %w", err)
	}

	result := toDomainQuizResult(m, items)
	return &result, nil
}

// ListByOwner returns one page of results, newest first, and the total count.
// Per-question rows are not loaded.
func (r *sqlxQuizResultRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.QuizResult, int, error) {
	exec := GetExecutor(ctx, r.db)

	var total int
	if err := exec.GetContext(ctx, &total, exec.Rebind(`SELECT COUNT(*) FROM quiz_results WHERE owner_id = ?`), ownerID); err != nil {
		return nil, 0, fmt.Errorf("failed to count quiz results: %w", err)
	}

	query, args := paginate(exec,
		`SELECT `+quizResultColumns+` FROM quiz_results WHERE owner_id = ? ORDER BY created_at DESC, id DESC`,
		[]interface{}{ownerID}, limit, offset)
	var rows []models.QuizResult
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list quiz results: %w", err)
	}

	results := make([]domain.QuizResult, 0, len(rows))
	for _, m := range rows {
		results = append(results, toDomainQuizResult(m, nil))
	}
	return results, total, nil
}

func (r *sqlxQuizResultRepository) Aggregate(ctx context.Context, ownerID string) (*domain.ScoreAggregate, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.ScoreAggregate
	query := exec.Rebind(`SELECT COUNT(*) AS quiz_count,
		COALESCE(SUM(score), 0) AS score_sum,
		COALESCE(SUM(score * 100.0 / total_questions), 0) AS percentage_sum
		FROM quiz_results WHERE owner_id = ?`)
	if err := exec.GetContext(ctx, &m, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to aggregate quiz results: %w", err)
	}
	return &domain.ScoreAggregate{
		Count:         m.Count,
		ScoreSum:      m.ScoreSum,
		PercentageSum: m.PercentageSum,
	}, nil
}

func (r *sqlxQuizResultRepository) ExistsForQuiz(ctx context.Context, ownerID, quizID string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM quiz_results WHERE owner_id = ? AND quiz_id = ?`)
	if err := exec.GetContext(ctx, &count, query, ownerID, quizID); err != nil {
		return false, fmt.Errorf("failed to check quiz result: %w", err)
	}
	return count > 0, nil
}

func (r *sqlxQuizResultRepository) ListIncorrectAnswers(ctx context.Context, ownerID, quizID string) ([]domain.IncorrectAnswer, error) {
	exec := GetExecutor(ctx, r.db)

	query := `SELECT r.id AS result_id, r.quiz_id, i.question_id, i.question_text,
		i.selected_option_text, i.correct_option_text, r.created_at
		FROM quiz_result_items i
		JOIN quiz_results r ON r.id = i.result_id
		WHERE r.owner_id = ? AND i.is_correct = 0`
	args := []interface{}{ownerID}
	if quizID != "" {
		query += ` AND r.quiz_id = ?`
		args = append(args, quizID)
	}
	query += ` ORDER BY r.created_at DESC, i.position`

	var rows []models.IncorrectAnswerRow
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list incorrect answers: %w", err)
	}

	answers := make([]domain.IncorrectAnswer, 0, len(rows))
	for _, row := range rows {
		answers = append(answers, domain.IncorrectAnswer{
			ResultID: row.ResultID,
			QuizID:   util.NullStringToString(row.QuizID),
			GradedQuestionResult: domain.GradedQuestionResult{
				QuestionID:         row.QuestionID,
				QuestionText:       row.QuestionText,
				SelectedOptionText: row.SelectedOptionText,
				CorrectOptionText:  row.CorrectOptionText,
				IsCorrect:          false,
			},
			CreatedAt: row.CreatedAt,
		})
	}
	return answers, nil
}
