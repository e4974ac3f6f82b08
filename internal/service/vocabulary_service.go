//go:generate mockery --name VocabularyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/repository"
)

// VocabularyService は学習モード用に単語帳を返す
type VocabularyService interface {
	ListEntries(ctx context.Context) (*model.VocabularyListResponse, error)
	GetEntry(ctx context.Context, entryID int) (*model.VocabularyEntry, error)
}

type vocabularyService struct {
	wordRepo repository.WordBankRepository
	logger   *slog.Logger
}

func NewVocabularyService(wordRepo repository.WordBankRepository, logger *slog.Logger) VocabularyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &vocabularyService{wordRepo: wordRepo, logger: logger}
}

func (s *vocabularyService) ListEntries(ctx context.Context) (*model.VocabularyListResponse, error) {
	entries, err := s.wordRepo.FindAll(ctx)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list vocabulary entries", slog.Any("error", err))
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the word bank.", "", errors.Join(model.ErrInternalServer, err))
	}
	if entries == nil {
		entries = []model.VocabularyEntry{}
	}
	return &model.VocabularyListResponse{Total: len(entries), Entries: entries}, nil
}

func (s *vocabularyService) GetEntry(ctx context.Context, entryID int) (*model.VocabularyEntry, error) {
	entry, err := s.wordRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("ENTRY_NOT_FOUND", "The vocabulary entry was not found.", "entry_id", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to get vocabulary entry", slog.Any("error", err), slog.Int("entry_id", entryID))
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to load the word bank.", "", errors.Join(model.ErrInternalServer, err))
	}
	return entry, nil
}
