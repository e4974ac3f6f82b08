//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/metrics"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/quiz"
	"go_5_english_tutor/internal/repository"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// AnswerResult は回答直後の判定と更新後のスナップショット
type AnswerResult struct {
	Correct  bool               `json:"correct"`
	Snapshot model.QuizSnapshot `json:"snapshot"`
}

type QuizService interface {
	GetSnapshot(ctx context.Context, learnerID uuid.UUID) (*model.QuizSnapshot, error)
	Start(ctx context.Context, learnerID uuid.UUID) (*model.QuizSnapshot, error)
	SubmitAnswer(ctx context.Context, learnerID uuid.UUID, req *model.SubmitAnswerRequest) (*AnswerResult, error)
	Reset(ctx context.Context, learnerID uuid.UUID, req *model.ResetQuizRequest) (*model.QuizSnapshot, error)
	Abandon(ctx context.Context, learnerID uuid.UUID) (*model.QuizSnapshot, error)
	GetResults(ctx context.Context, learnerID uuid.UUID) (*model.QuizResults, error)
}

// quizService は学習者ごとのセッションをメモリに持つ。
// learning 以外のセッションだけを保持し、件数の上限とアイドル TTL を超えたものは捨てる。
// セッション自体は排他しないので、すべての操作を mu の中で行う。
type quizService struct {
	wordRepo  repository.WordBankRepository
	generator *quiz.Generator
	metrics   *metrics.Metrics
	logger    *slog.Logger

	mu       sync.Mutex
	sessions *expirable.LRU[uuid.UUID, *quiz.Session]
}

func NewQuizService(wordRepo repository.WordBankRepository, generator *quiz.Generator, cfg config.QuizConfig, m *metrics.Metrics, logger *slog.Logger) QuizService {
	if logger == nil {
		logger = slog.Default()
	}
	if generator == nil {
		generator = quiz.NewGenerator(nil)
	}
	return &quizService{
		wordRepo:  wordRepo,
		generator: generator,
		metrics:   m,
		logger:    logger,
		sessions:  expirable.NewLRU[uuid.UUID, *quiz.Session](cfg.MaxSessions, nil, cfg.SessionIdleTTL),
	}
}

// lookup は保持中のセッションを返す。無ければ保存しない learning 状態のセッションを作る。
// mu を持った状態で呼ぶこと。
func (s *quizService) lookup(ctx context.Context, learnerID uuid.UUID) (*quiz.Session, error) {
	if sess, ok := s.sessions.Get(learnerID); ok {
		// 触るたびに TTL を延ばす
		s.sessions.Add(learnerID, sess)
		return sess, nil
	}
	bank, err := s.wordRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return quiz.NewSession(bank, s.generator), nil
}

// keep は状態を変えたセッションを保持し直す。learning に戻ったものは新規と同じなので捨てる。
func (s *quizService) keep(learnerID uuid.UUID, sess *quiz.Session) {
	if sess.Phase() == model.PhaseLearning {
		s.sessions.Remove(learnerID)
	} else {
		s.sessions.Add(learnerID, sess)
	}
	s.metrics.SetQuizSessions(s.sessions.Len())
}

func (s *quizService) GetSnapshot(ctx context.Context, learnerID uuid.UUID) (*model.QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, learnerID)
	if err != nil {
		return nil, s.wrapError(ctx, "GetSnapshot", err)
	}
	snap := sess.Snapshot()
	return &snap, nil
}

func (s *quizService) Start(ctx context.Context, learnerID uuid.UUID) (*model.QuizSnapshot, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "QuizService"))

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, learnerID)
	if err != nil {
		return nil, s.wrapError(ctx, "Start", err)
	}
	if err := sess.Start(); err != nil {
		return nil, s.wrapError(ctx, "Start", err)
	}
	s.keep(learnerID, sess)

	s.metrics.QuizStarted()
	snap := sess.Snapshot()
	logger.Info("Quiz started", slog.String("session_id", snap.SessionID.String()), slog.Int("questions", snap.TotalQuestions))
	return &snap, nil
}

func (s *quizService) SubmitAnswer(ctx context.Context, learnerID uuid.UUID, req *model.SubmitAnswerRequest) (*AnswerResult, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "QuizService"))

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, learnerID)
	if err != nil {
		return nil, s.wrapError(ctx, "SubmitAnswer", err)
	}
	correct, err := sess.SubmitAnswer(req.Answer)
	if err != nil {
		return nil, s.wrapError(ctx, "SubmitAnswer", err)
	}
	s.keep(learnerID, sess)

	s.metrics.AnswerSubmitted(correct)
	snap := sess.Snapshot()
	logger.Debug("Answer recorded", slog.Bool("correct", correct), slog.Int("answered", snap.Answered))

	if snap.Phase == model.PhaseCompleted {
		band := model.BandFor(quiz.Percentage(snap.Score, snap.TotalQuestions))
		s.metrics.QuizCompleted(string(band))
		logger.Info("Quiz completed", slog.Int("score", snap.Score), slog.Int("total", snap.TotalQuestions), slog.String("band", string(band)))
	}
	return &AnswerResult{Correct: correct, Snapshot: snap}, nil
}

func (s *quizService) Reset(ctx context.Context, learnerID uuid.UUID, req *model.ResetQuizRequest) (*model.QuizSnapshot, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "QuizService"))

	target := model.ResetToQuiz
	if req != nil && req.Target != "" {
		target = req.Target
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, learnerID)
	if err != nil {
		return nil, s.wrapError(ctx, "Reset", err)
	}
	if err := sess.Reset(target); err != nil {
		return nil, s.wrapError(ctx, "Reset", err)
	}
	s.keep(learnerID, sess)
	if target == model.ResetToQuiz {
		s.metrics.QuizStarted()
	}

	snap := sess.Snapshot()
	logger.Info("Quiz reset", slog.String("target", string(target)))
	return &snap, nil
}

func (s *quizService) Abandon(ctx context.Context, learnerID uuid.UUID) (*model.QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, learnerID)
	if err != nil {
		return nil, s.wrapError(ctx, "Abandon", err)
	}
	sess.Abandon()
	s.keep(learnerID, sess)

	middleware.GetLogger(ctx).Info("Quiz abandoned")
	snap := sess.Snapshot()
	return &snap, nil
}

func (s *quizService) GetResults(ctx context.Context, learnerID uuid.UUID) (*model.QuizResults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(ctx, learnerID)
	if err != nil {
		return nil, s.wrapError(ctx, "GetResults", err)
	}
	results, err := sess.Results()
	if err != nil {
		return nil, s.wrapError(ctx, "GetResults", err)
	}
	return results, nil
}

// wrapError はエンジンのエラーを AppError に変換する
func (s *quizService) wrapError(ctx context.Context, op string, err error) error {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "QuizService"), slog.String("op", op))

	switch {
	case errors.Is(err, model.ErrInvalidState):
		logger.Warn("Illegal quiz transition", slog.Any("error", err))
		return model.NewAppError("INVALID_QUIZ_STATE", quizStateMessage(op), "", err)
	case errors.Is(err, model.ErrInvalidInput):
		logger.Warn("Invalid quiz input", slog.Any("error", err))
		switch op {
		case "SubmitAnswer":
			return model.NewAppError("VALIDATION_ERROR", "Answer must not be empty.", "answer", err)
		case "Reset":
			return model.NewAppError("VALIDATION_ERROR", "Target must be one of: quiz learning.", "target", err)
		}
		return model.NewAppError("VALIDATION_ERROR", "The request is invalid.", "", err)
	case errors.Is(err, model.ErrConfiguration):
		logger.Error("Word bank cannot produce a quiz", slog.Any("error", err))
		return model.NewAppError("WORD_BANK_TOO_SMALL", "The word bank does not have enough words to build a quiz.", "", err)
	default:
		logger.Error("Unexpected quiz error", slog.Any("error", err))
		return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", errors.Join(model.ErrInternalServer, err))
	}
}

func quizStateMessage(op string) string {
	switch op {
	case "Start":
		return "A quiz is already in progress. Finish or reset it first."
	case "SubmitAnswer":
		return "There is no quiz in progress. Start a quiz first."
	case "GetResults":
		return "Results are available only after the quiz is completed."
	default:
		return "The quiz is not in a state that allows this operation."
	}
}
