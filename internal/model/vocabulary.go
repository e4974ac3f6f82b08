// internal/model/vocabulary.go
package model

// Difficulty は表示用の難易度
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid は定義済みの難易度かどうかを返す
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// VocabularyEntry は単語帳の1語。起動時に作られ、以後変更されない。
// Meaning がクイズの正解になるため、単語帳の中で重複してはいけない。
type VocabularyEntry struct {
	ID            int        `json:"id"`
	Term          string     `json:"term"`
	Meaning       string     `json:"meaning"`
	KoreanMeaning string     `json:"korean_meaning,omitempty"`
	Pronunciation string     `json:"pronunciation,omitempty"`
	Example       string     `json:"example,omitempty"`
	KoreanExample string     `json:"korean_example,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
}

// VocabularyListResponse は単語一覧のレスポンス
type VocabularyListResponse struct {
	Total   int               `json:"total"`
	Entries []VocabularyEntry `json:"entries"`
}
