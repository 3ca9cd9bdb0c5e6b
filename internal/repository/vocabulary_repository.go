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

const vocabularyColumns = `id, owner_id, word, definition, added_at`

type sqlxVocabularyRepository struct {
	db DBTX
}

// NewSQLXVocabularyRepository creates a vocabulary repository backed by db.
func NewSQLXVocabularyRepository(db *sqlx.DB) domain.VocabularyRepository {
	return &sqlxVocabularyRepository{db: db}
}

func toDomainVocabularyEntry(m models.VocabularyEntry) domain.VocabularyEntry {
	return domain.VocabularyEntry{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Word:       m.Word,
		Definition: m.Definition,
		AddedAt:    m.AddedAt,
	}
}

func (r *sqlxVocabularyRepository) Create(ctx context.Context, entry *domain.VocabularyEntry) error {
	if entry.ID == "" {
		entry.ID = util.NewULID()
	}
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`INSERT INTO vocabulary_entries (` + vocabularyColumns + `) VALUES (?, ?, ?, ?, ?)`)
	if _, err := exec.ExecContext(ctx, query, entry.ID, entry.OwnerID, entry.Word, entry.Definition, entry.AddedAt); err != nil {
		return fmt.Errorf("failed to create vocabulary entry: %w", err)
	}
	return nil
}

func (r *sqlxVocabularyRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.VocabularyEntry, error) {
	exec := GetExecutor(ctx, r.db)
	var m models.VocabularyEntry
	query := exec.Rebind(`SELECT ` + vocabularyColumns + ` FROM vocabulary_entries WHERE id = ? AND owner_id = ?`)
	if err := exec.GetContext(ctx, &m, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vocabulary entry: %w", err)
	}
	entry := toDomainVocabularyEntry(m)
	return &entry, nil
}

// ListByOwner returns the owner's entries, newest first.
func (r *sqlxVocabularyRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.VocabularyEntry, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.VocabularyEntry
	query := exec.Rebind(`SELECT ` + vocabularyColumns + ` FROM vocabulary_entries WHERE owner_id = ? ORDER BY added_at DESC, id DESC`)
	if err := exec.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list vocabulary: %w", err)
	}
	entries := make([]domain.VocabularyEntry, 0, len(rows))
	for _, m := range rows {
		entries = append(entries, toDomainVocabularyEntry(m))
	}
	return entries, nil
}

func (r *sqlxVocabularyRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	if err := exec.GetContext(ctx, &count, exec.Rebind(`SELECT COUNT(*) FROM vocabulary_entries WHERE owner_id = ?`), ownerID); err != nil {
		return 0, fmt.Errorf("failed to count vocabulary: %w", err)
	}
	return count, nil
}

// ExistsByWord matches the word case-insensitively.
func (r *sqlxVocabularyRepository) ExistsByWord(ctx context.Context, ownerID, word string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	var count int
	query := exec.Rebind(`SELECT COUNT(*) FROM vocabulary_entries WHERE owner_id = ? AND LOWER(word) = LOWER(?)`)
	if err := exec.GetContext(ctx, &count, query, ownerID, word); err != nil {
		return false, fmt.Errorf("failed to check vocabulary word: %w", err)
	}
	return count > 0, nil
}

// Update rewrites word and definition. It returns sql.ErrNoRows when the entry
// does not exist for the owner.
func (r *sqlxVocabularyRepository) Update(ctx context.Context, entry *domain.VocabularyEntry) error {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`UPDATE vocabulary_entries SET word = ?, definition = ? WHERE id = ? AND owner_id = ?`)
	result, err := exec.ExecContext(ctx, query, entry.Word, entry.Definition, entry.ID, entry.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to update vocabulary entry: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxVocabularyRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	exec := GetExecutor(ctx, r.db)
	result, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM vocabulary_entries WHERE id = ? AND owner_id = ?`), id, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete vocabulary entry: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}
