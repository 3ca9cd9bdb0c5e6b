package service

import (
	"context"
	"strings"

	"vocab-builder/internal/domain"
	"vocab-builder/internal/dto"
	"vocab-builder/internal/logger"
	"vocab-builder/internal/util"

	"go.uber.org/zap"
)

// VocabularyService manages the words a user studies.
type VocabularyService interface {
	AddWord(ctx context.Context, ownerID string, req *dto.WordRequest) (*dto.WordMutationResponse, error)
	ListWords(ctx context.Context, ownerID string) ([]dto.WordResponse, error)
	UpdateWord(ctx context.Context, ownerID, wordID string, req *dto.WordRequest) (*dto.WordMutationResponse, error)
	DeleteWord(ctx context.Context, ownerID, wordID string) (*dto.DeleteWordResponse, error)
}

type vocabularyService struct {
	repo domain.VocabularyRepository
}

func NewVocabularyService(repo domain.VocabularyRepository) VocabularyService {
	return &vocabularyService{repo: repo}
}

func (s *vocabularyService) AddWord(ctx context.Context, ownerID string, req *dto.WordRequest) (*dto.WordMutationResponse, error) {
	entry := domain.NewVocabularyEntry(ownerID, req.Word, req.Definition)
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	entry.ID = util.NewULID()

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, domain.NewInternalError("Failed to add word", err)
	}
	logger.Get().Debug("Word added", zap.String("userID", ownerID), zap.String("wordID", entry.ID))

	return &dto.WordMutationResponse{Message: "Word added successfully", Word: dto.ToWordResponse(entry)}, nil
}

// ListWords returns the owner's words, most recently added first.
func (s *vocabularyService) ListWords(ctx context.Context, ownerID string) ([]dto.WordResponse, error) {
	entries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to retrieve vocabulary", err)
	}
	words := make([]dto.WordResponse, 0, len(entries))
	for i := range entries {
		words = append(words, dto.ToWordResponse(&entries[i]))
	}
	return words, nil
}

func (s *vocabularyService) UpdateWord(ctx context.Context, ownerID, wordID string, req *dto.WordRequest) (*dto.WordMutationResponse, error) {
	entry, err := s.repo.GetByID(ctx, ownerID, wordID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update word", err)
	}
	if entry == nil {
		return nil, domain.NewWordNotFoundError(wordID)
	}

	entry.Word = strings.TrimSpace(req.Word)
	entry.Definition = strings.TrimSpace(req.Definition)
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, domain.NewInternalError("Failed to update word", err)
	}

	return &dto.WordMutationResponse{Message: "Word updated successfully", Word: dto.ToWordResponse(entry)}, nil
}

func (s *vocabularyService) DeleteWord(ctx context.Context, ownerID, wordID string) (*dto.DeleteWordResponse, error) {
	entry, err := s.repo.GetByID(ctx, ownerID, wordID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to delete word", err)
	}
	if entry == nil {
		return nil, domain.NewWordNotFoundError(wordID)
	}

	deleted, err := s.repo.Delete(ctx, ownerID, wordID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to delete word", err)
	}
	if !deleted {
		return nil, domain.NewWordNotFoundError(wordID)
	}

	return &dto.DeleteWordResponse{Message: "Word deleted successfully", DeletedWord: dto.ToWordResponse(entry)}, nil
}
