// internal/model/quiz.go
package model

import "github.com/google/uuid"

// QuizPhase はクイズセッションの段階
type QuizPhase string

const (
	PhaseLearning   QuizPhase = "learning"
	PhaseInProgress QuizPhase = "in_progress"
	PhaseCompleted  QuizPhase = "completed"
)

// PerformanceBand は結果画面のメッセージ区分
type PerformanceBand string

const (
	BandExcellent    PerformanceBand = "excellent"     // 80%以上
	BandGood         PerformanceBand = "good"          // 60%以上
	BandKeepStudying PerformanceBand = "keep_studying" // それ未満
)

// BandFor はパーセンテージから区分を決める
func BandFor(percentage int) PerformanceBand {
	switch {
	case percentage >= 80:
		return BandExcellent
	case percentage >= 60:
		return BandGood
	default:
		return BandKeepStudying
	}
}

// Message は区分ごとの表示メッセージ
func (b PerformanceBand) Message() string {
	switch b {
	case BandExcellent:
		return "Excellent! You really understand these words!"
	case BandGood:
		return "Well done! A little more practice and you'll have it perfect!"
	default:
		return "Keep studying! Review the words and try again!"
	}
}

// QuizQuestion は単語1語から作られる4択問題。Options は生成時に一度だけシャッフルされる。
type QuizQuestion struct {
	SourceEntryID int      `json:"source_entry_id"`
	Prompt        string   `json:"prompt"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
}

// CurrentQuestion は回答中の問題。正解は含めない。
type CurrentQuestion struct {
	SourceEntryID int      `json:"source_entry_id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
}

// QuizSnapshot はセッションの読み取り専用ビュー
type QuizSnapshot struct {
	SessionID       uuid.UUID        `json:"session_id"`
	Phase           QuizPhase        `json:"phase"`
	CurrentIndex    int              `json:"current_index"`
	TotalQuestions  int              `json:"total_questions"`
	Answered        int              `json:"answered"`
	Score           int              `json:"score"`
	CurrentQuestion *CurrentQuestion `json:"current_question,omitempty"`
}

// QuestionResult は1問ごとの結果
type QuestionResult struct {
	SourceEntryID int    `json:"source_entry_id"`
	Prompt        string `json:"prompt"`
	CorrectAnswer string `json:"correct_answer"`
	Answer        string `json:"answer"`
	Correct       bool   `json:"correct"`
}

// QuizResults は完了したセッションの結果
type QuizResults struct {
	SessionID      uuid.UUID        `json:"session_id"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
	Percentage     int              `json:"percentage"`
	Band           PerformanceBand  `json:"band"`
	Message        string           `json:"message"`
	Results        []QuestionResult `json:"results"`
}

// ResetTarget はリセット後の行き先
type ResetTarget string

const (
	ResetToQuiz     ResetTarget = "quiz"
	ResetToLearning ResetTarget = "learning"
)

// SubmitAnswerRequest は回答送信リクエストのDTO
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// ResetQuizRequest はリセットリクエストのDTO。target 省略時は quiz。
type ResetQuizRequest struct {
	Target ResetTarget `json:"target" validate:"omitempty,oneof=quiz learning"`
}
