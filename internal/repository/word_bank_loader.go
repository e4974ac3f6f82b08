package repository

import (
	"fmt"
	"log/slog"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/model"
)

// LoadWordBank は設定から単語帳を組み立てる。
// 優先順位は xlsx_path → entries → 組み込みの10語。
// 返す前に検証するので、ここでエラーになったら起動を中止する。
func LoadWordBank(cfg config.WordBankConfig, logger *slog.Logger) ([]model.VocabularyEntry, error) {
	var (
		entries []model.VocabularyEntry
		source  string
		err     error
	)

	switch {
	case cfg.XLSXPath != "":
		source = cfg.XLSXPath
		entries, err = LoadWordBankFromXLSX(cfg.XLSXPath, cfg.SheetName)
		if err != nil {
			return nil, err
		}
	case len(cfg.Entries) > 0:
		source = "config"
		entries, err = entriesFromConfig(cfg.Entries)
		if err != nil {
			return nil, err
		}
	default:
		source = "default"
		entries = DefaultWordBank()
	}

	if err := ValidateWordBank(entries); err != nil {
		return nil, err
	}
	logger.Info("Word bank loaded", slog.String("source", source), slog.Int("entries", len(entries)))
	return entries, nil
}

func entriesFromConfig(items []config.WordBankEntryConfig) ([]model.VocabularyEntry, error) {
	entries := make([]model.VocabularyEntry, 0, len(items))
	for i, item := range items {
		difficulty, err := parseDifficulty(item.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: word_bank.entries[%d]: %v", model.ErrConfiguration, i, err)
		}
		id := item.ID
		if id == 0 {
			id = i + 1
		}
		entries = append(entries, model.VocabularyEntry{
			ID:            id,
			Term:          item.Term,
			Meaning:       item.Meaning,
			KoreanMeaning: item.KoreanMeaning,
			Pronunciation: item.Pronunciation,
			Example:       item.Example,
			KoreanExample: item.KoreanExample,
			Difficulty:    difficulty,
		})
	}
	return entries, nil
}
