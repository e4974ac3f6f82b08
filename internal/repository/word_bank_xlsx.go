package repository

import (
	"fmt"
	"io"
	"strings"

	"go_5_english_tutor/internal/model"

	"github.com/xuri/excelize/v2"
)

// Excel の列の並び (1行目は見出し)
//
//	A: term  B: meaning  C: korean_meaning  D: pronunciation
//	E: example  F: korean_example  G: difficulty
const (
	colTerm = iota
	colMeaning
	colKoreanMeaning
	colPronunciation
	colExample
	colKoreanExample
	colDifficulty
)

// LoadWordBankFromXLSX はファイルから単語帳を読む。ID は見出しを除いた行番号 (1始まり)。
func LoadWordBankFromXLSX(path, sheet string) ([]model.VocabularyEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open word bank file %s: %v", model.ErrConfiguration, path, err)
	}
	defer f.Close()
	return readWordBankSheet(f, sheet)
}

// ReadWordBankXLSX は io.Reader から読む版
func ReadWordBankXLSX(r io.Reader, sheet string) ([]model.VocabularyEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read word bank workbook: %v", model.ErrConfiguration, err)
	}
	defer f.Close()
	return readWordBankSheet(f, sheet)
}

func readWordBankSheet(f *excelize.File, sheet string) ([]model.VocabularyEntry, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get rows from sheet %q: %v", model.ErrConfiguration, sheet, err)
	}

	entries := make([]model.VocabularyEntry, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // 見出し
		}
		term := cell(row, colTerm)
		meaning := cell(row, colMeaning)
		if term == "" && meaning == "" {
			continue // 空行
		}

		difficulty, err := parseDifficulty(cell(row, colDifficulty))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", model.ErrConfiguration, i+1, err)
		}

		entries = append(entries, model.VocabularyEntry{
			ID:            len(entries) + 1,
			Term:          term,
			Meaning:       meaning,
			KoreanMeaning: cell(row, colKoreanMeaning),
			Pronunciation: cell(row, colPronunciation),
			Example:       cell(row, colExample),
			KoreanExample: cell(row, colKoreanExample),
			Difficulty:    difficulty,
		})
	}
	return entries, nil
}

// xlsxHeader は書き出し時の見出し行
var xlsxHeader = []interface{}{"term", "meaning", "korean_meaning", "pronunciation", "example", "korean_example", "difficulty"}

// WriteWordBankXLSX は単語帳を読み込みと同じ列の並びで書き出す
func WriteWordBankXLSX(w io.Writer, sheet string, entries []model.VocabularyEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, e := range entries {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.Term, e.Meaning, e.KoreanMeaning, e.Pronunciation, e.Example, e.KoreanExample, string(e.Difficulty)}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// cell は GetRows が末尾の空セルを省略するので範囲外なら空文字を返す
func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseDifficulty は大文字小文字を区別せずに難易度を読む。空なら Beginner。
func parseDifficulty(s string) (model.Difficulty, error) {
	if s == "" {
		return model.DifficultyBeginner, nil
	}
	for _, d := range []model.Difficulty{model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced} {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}
