//go:generate mockery --name WordBankRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"strings"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/quiz"
)

// WordBankRepository は起動時に読み込んだ単語帳への読み取り専用アクセス
type WordBankRepository interface {
	FindAll(ctx context.Context) ([]model.VocabularyEntry, error)
	FindByID(ctx context.Context, entryID int) (*model.VocabularyEntry, error)
	Count() int
}

// staticWordBankRepository はメモリ上の単語帳。生成後は変更されないのでロック不要。
type staticWordBankRepository struct {
	entries []model.VocabularyEntry
	byID    map[int]int
}

// NewStaticWordBankRepository は単語帳を検証してからリポジトリを作る。
// 不正な単語帳なら ErrConfiguration を返す。
func NewStaticWordBankRepository(entries []model.VocabularyEntry) (WordBankRepository, error) {
	if err := ValidateWordBank(entries); err != nil {
		return nil, err
	}

	copied := make([]model.VocabularyEntry, len(entries))
	copy(copied, entries)

	byID := make(map[int]int, len(copied))
	for i, e := range copied {
		byID[e.ID] = i
	}
	return &staticWordBankRepository{entries: copied, byID: byID}, nil
}

// FindAll は単語帳の順序のままコピーを返す
func (r *staticWordBankRepository) FindAll(ctx context.Context) ([]model.VocabularyEntry, error) {
	out := make([]model.VocabularyEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *staticWordBankRepository) FindByID(ctx context.Context, entryID int) (*model.VocabularyEntry, error) {
	idx, ok := r.byID[entryID]
	if !ok {
		middleware.GetLogger(ctx).Debug("Vocabulary entry not found", "entry_id", entryID)
		return nil, model.ErrNotFound
	}
	entry := r.entries[idx]
	return &entry, nil
}

func (r *staticWordBankRepository) Count() int {
	return len(r.entries)
}

// ValidateWordBank は単語帳の整合性を確認する。
// 4語以上、ID と meaning がそれぞれ重複しない、term と meaning が空でない、難易度が定義済み。
func ValidateWordBank(entries []model.VocabularyEntry) error {
	if len(entries) < quiz.MinWordBankSize {
		return fmt.Errorf("%w: word bank has %d entries, at least %d are required",
			model.ErrConfiguration, len(entries), quiz.MinWordBankSize)
	}

	ids := make(map[int]bool, len(entries))
	meanings := make(map[string]int, len(entries))
	for i, e := range entries {
		if ids[e.ID] {
			return fmt.Errorf("%w: duplicate entry id %d", model.ErrConfiguration, e.ID)
		}
		ids[e.ID] = true

		if strings.TrimSpace(e.Term) == "" {
			return fmt.Errorf("%w: entry %d has an empty term", model.ErrConfiguration, e.ID)
		}
		if strings.TrimSpace(e.Meaning) == "" {
			return fmt.Errorf("%w: entry %d has an empty meaning", model.ErrConfiguration, e.ID)
		}
		if prev, dup := meanings[e.Meaning]; dup {
			return fmt.Errorf("%w: entries %d and %d share the meaning %q",
				model.ErrConfiguration, entries[prev].ID, e.ID, e.Meaning)
		}
		meanings[e.Meaning] = i

		if !e.Difficulty.Valid() {
			return fmt.Errorf("%w: entry %d has unknown difficulty %q", model.ErrConfiguration, e.ID, e.Difficulty)
		}
	}
	return nil
}
