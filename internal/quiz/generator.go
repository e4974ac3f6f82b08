// Package quiz は単語帳から4択問題を作り、回答と採点の状態を管理する。
package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go_5_english_tutor/internal/model"
)

const (
	// OptionCount は1問あたりの選択肢の数
	OptionCount = 4
	// DistractorCount は不正解の選択肢の数
	DistractorCount = OptionCount - 1
	// MinWordBankSize は問題を作るのに必要な最小語数
	MinWordBankSize = OptionCount
)

// Generator は単語帳の各語から問題を1つずつ作る。
// 同じ単語帳でも呼ぶたびに不正解の選び方と並び順が変わる。
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator は乱数源を受け取る。nil なら現在時刻で初期化する。
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return &Generator{rnd: rnd}
}

// NewSeededGenerator はテストや再現用に固定シードで作る
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate は単語帳の順に問題を返す。単語帳が MinWordBankSize 未満なら ErrConfiguration。
func (g *Generator) Generate(entries []model.VocabularyEntry) ([]model.QuizQuestion, error) {
	if len(entries) < MinWordBankSize {
		return nil, fmt.Errorf("%w: word bank has %d entries, at least %d are required",
			model.ErrConfiguration, len(entries), MinWordBankSize)
	}

	questions := make([]model.QuizQuestion, 0, len(entries))
	for i, entry := range entries {
		pool := make([]string, 0, len(entries)-1)
		for j, other := range entries {
			if j != i {
				pool = append(pool, other.Meaning)
			}
		}

		options := make([]string, 0, OptionCount)
		options = append(options, entry.Meaning)
		options = append(options, g.pick(pool, DistractorCount)...)
		g.shuffle(options)

		questions = append(questions, model.QuizQuestion{
			SourceEntryID: entry.ID,
			Prompt:        entry.Term,
			CorrectAnswer: entry.Meaning,
			Options:       options,
		})
	}
	return questions, nil
}

// pick は pool から n 個を重複なく一様に選ぶ (部分 Fisher–Yates)。pool は並べ替えられる。
func (g *Generator) pick(pool []string, n int) []string {
	for i := 0; i < n; i++ {
		j := i + g.rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func (g *Generator) shuffle(s []string) {
	g.rnd.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
