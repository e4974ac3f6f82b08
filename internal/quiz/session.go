package quiz

import (
	"fmt"
	"math"
	"strings"

	"go_5_english_tutor/internal/model"

	"github.com/google/uuid"
)

// Session は学習者1人分のクイズ状態。
// learning → in_progress → completed と遷移し、completed からは再開始できる。
// ゴルーチン安全ではない。呼び出し側が所有者として排他する。
type Session struct {
	id        uuid.UUID
	bank      []model.VocabularyEntry
	generator *Generator

	phase        model.QuizPhase
	questions    []model.QuizQuestion
	currentIndex int
	answers      []string
	score        int
}

// NewSession は learning 状態のセッションを作る
func NewSession(bank []model.VocabularyEntry, generator *Generator) *Session {
	if generator == nil {
		generator = NewGenerator(nil)
	}
	return &Session{
		id:        uuid.New(),
		bank:      bank,
		generator: generator,
		phase:     model.PhaseLearning,
	}
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) Phase() model.QuizPhase { return s.phase }
func (s *Session) Score() int             { return s.score }

// Start は問題を作り直して in_progress にする。回答中なら ErrInvalidState。
// 問題の生成に失敗した場合、セッションは変更されない。
func (s *Session) Start() error {
	if s.phase == model.PhaseInProgress {
		return fmt.Errorf("%w: quiz is already in progress", model.ErrInvalidState)
	}
	return s.begin()
}

// SubmitAnswer は現在の問題に回答する。正解なら true を返す。
// in_progress 以外では ErrInvalidState、空の回答は ErrInvalidInput で、どちらも状態は変わらない。
func (s *Session) SubmitAnswer(answer string) (bool, error) {
	if s.phase != model.PhaseInProgress {
		return false, fmt.Errorf("%w: cannot submit an answer while %s", model.ErrInvalidState, s.phase)
	}
	if strings.TrimSpace(answer) == "" {
		return false, fmt.Errorf("%w: answer must not be empty", model.ErrInvalidInput)
	}

	// 比較は完全一致 (大文字小文字も区別、正規化なし)
	correct := answer == s.questions[s.currentIndex].CorrectAnswer
	s.answers = append(s.answers, answer)
	if correct {
		s.score++
	}

	s.currentIndex++
	if s.currentIndex == len(s.questions) {
		s.phase = model.PhaseCompleted
	}
	return correct, nil
}

// Reset はどの状態からでも呼べる。quiz なら新しい問題で再開始、learning なら全部消す。
func (s *Session) Reset(target model.ResetTarget) error {
	switch target {
	case model.ResetToLearning:
		s.clear()
		return nil
	case model.ResetToQuiz, "":
		return s.begin()
	default:
		return fmt.Errorf("%w: unknown reset target %q", model.ErrInvalidInput, target)
	}
}

// Abandon は回答中のクイズを破棄して learning に戻す
func (s *Session) Abandon() {
	s.clear()
}

// Snapshot は表示用の読み取り専用ビューを返す。回答中の問題の正解は含めない。
func (s *Session) Snapshot() model.QuizSnapshot {
	snap := model.QuizSnapshot{
		SessionID:      s.id,
		Phase:          s.phase,
		CurrentIndex:   s.currentIndex,
		TotalQuestions: len(s.questions),
		Answered:       len(s.answers),
		Score:          s.score,
	}
	if s.phase == model.PhaseInProgress {
		q := s.questions[s.currentIndex]
		snap.CurrentQuestion = &model.CurrentQuestion{
			SourceEntryID: q.SourceEntryID,
			Prompt:        q.Prompt,
			Options:       append([]string(nil), q.Options...),
		}
	}
	return snap
}

// Results は completed のときだけ結果を返す
func (s *Session) Results() (*model.QuizResults, error) {
	if s.phase != model.PhaseCompleted {
		return nil, fmt.Errorf("%w: results are only available after the quiz is completed", model.ErrInvalidState)
	}

	results := make([]model.QuestionResult, len(s.questions))
	for i, q := range s.questions {
		results[i] = model.QuestionResult{
			SourceEntryID: q.SourceEntryID,
			Prompt:        q.Prompt,
			CorrectAnswer: q.CorrectAnswer,
			Answer:        s.answers[i],
			Correct:       s.answers[i] == q.CorrectAnswer,
		}
	}

	percentage := Percentage(s.score, len(s.questions))
	band := model.BandFor(percentage)
	return &model.QuizResults{
		SessionID:      s.id,
		Score:          s.score,
		TotalQuestions: len(s.questions),
		Percentage:     percentage,
		Band:           band,
		Message:        band.Message(),
		Results:        results,
	}, nil
}

// Percentage は round(100 * score / total)。total が0なら0。
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

func (s *Session) begin() error {
	questions, err := s.generator.Generate(s.bank)
	if err != nil {
		return err
	}
	s.questions = questions
	s.currentIndex = 0
	s.answers = make([]string, 0, len(questions))
	s.score = 0
	s.phase = model.PhaseInProgress
	return nil
}

func (s *Session) clear() {
	s.questions = nil
	s.currentIndex = 0
	s.answers = nil
	s.score = 0
	s.phase = model.PhaseLearning
}
