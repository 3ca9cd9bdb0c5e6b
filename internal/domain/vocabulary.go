package domain

import (
	"context"
	"strings"
	"time"
)

// VocabularyEntry is a word and its definition owned by one user.
type VocabularyEntry struct {
	ID         string
	OwnerID    string
	Word       string
	Definition string
	AddedAt    time.Time
}

// NewVocabularyEntry creates a new VocabularyEntry with trimmed text.
func NewVocabularyEntry(ownerID, word, definition string) *VocabularyEntry {
	return &VocabularyEntry{
		OwnerID:    ownerID,
		Word:       strings.TrimSpace(word),
		Definition: strings.TrimSpace(definition),
		AddedAt:    time.Now(),
	}
}

// Validate validates the vocabulary entry
func (v *VocabularyEntry) Validate() error {
	var errs ValidationErrors
	if v.OwnerID == "" {
		errs = append(errs, NewMissingFieldError("ownerId"))
	}
	if strings.TrimSpace(v.Word) == "" {
		errs = append(errs, NewMissingFieldError("word"))
	}
	if strings.TrimSpace(v.Definition) == "" {
		errs = append(errs, NewMissingFieldError("definition"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// VocabularyRepository defines the interface for vocabulary persistence.
// Lookups that find nothing return nil without an error.
type VocabularyRepository interface {
	Create(ctx context.Context, entry *VocabularyEntry) error
	GetByID(ctx context.Context, ownerID, id string) (*VocabularyEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]VocabularyEntry, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	ExistsByWord(ctx context.Context, ownerID, word string) (bool, error)
	Update(ctx context.Context, entry *VocabularyEntry) error
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
