//go:generate mockery --name TutorService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go_5_english_tutor/internal/metrics"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"

	"github.com/google/uuid"
)

// クライアントに返すメッセージ (フロントエンドがそのまま表示する)
const (
	TutorNotConfiguredMessage = "AI tutor is not configured. Please add ANTHROPIC_API_KEY to environment variables."
	TutorFailedMessage        = "Failed to get response from AI tutor. Please try again."
	TutorBusyMessage          = "Your previous message is still being answered. Please wait for the reply."
)

const tutorSystemPrompt = `You are an experienced English tutor named Alex. Your role is to help students improve their English language skills through conversation and guidance.

Key guidelines:
- Always respond in English
- Be encouraging, patient, and supportive
- Correct grammar mistakes gently and explain why
- Suggest vocabulary improvements when appropriate
- Ask follow-up questions to encourage conversation
- Provide examples when explaining concepts
- Adapt your language level to the student's proficiency
- Focus on practical, everyday English usage
- Encourage the student to practice speaking and writing

If the student makes mistakes, correct them in a friendly way and explain the correct usage. Always end your responses with a question or suggestion to keep the conversation flowing.`

const tutorGreeting = "안녕하세요! 저는 Alex, 여러분의 AI 영어 튜터입니다. 대화를 통해 영어 실력을 향상시킬 수 있도록 도와드릴게요. 오늘은 무엇에 대해 이야기하고 싶으신가요? 문법, 단어, 또는 일상 대화에 대해 질문하셔도 좋아요!"

var tutorSuggestedTopics = []string{
	"취미에 대해 영어로 말하고 싶어요",
	"문법을 도와주세요",
	"날씨에 관한 영어 표현을 배우고 싶어요",
	"여행 관련 영어를 가르쳐주세요",
	"면접 질문 연습을 하고 싶어요",
}

// metrics のラベル
const (
	tutorOutcomeSuccess      = "success"
	tutorOutcomeUnconfigured = "unconfigured"
	tutorOutcomeUpstream     = "upstream_error"
	tutorOutcomeBusy         = "busy"
)

type TutorService interface {
	Intro(ctx context.Context) *model.TutorIntroResponse
	Configured() bool
	Chat(ctx context.Context, learnerID uuid.UUID, req *model.TutorChatRequest) (string, error)
}

type tutorService struct {
	completer Completer
	metrics   *metrics.Metrics
	logger    *slog.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewTutorService(completer Completer, m *metrics.Metrics, logger *slog.Logger) TutorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &tutorService{
		completer: completer,
		metrics:   m,
		logger:    logger,
		inFlight:  make(map[uuid.UUID]struct{}),
	}
}

func (s *tutorService) Intro(ctx context.Context) *model.TutorIntroResponse {
	return &model.TutorIntroResponse{
		Greeting:        tutorGreeting,
		SuggestedTopics: append([]string(nil), tutorSuggestedTopics...),
		Configured:      s.Configured(),
	}
}

func (s *tutorService) Configured() bool {
	return IsConfigured(s.completer)
}

// Chat はプロンプトを組み立てて言語モデルに送る。
// 同じ学習者の前のリクエストが終わっていなければ待たずに ErrConflict を返す。
func (s *tutorService) Chat(ctx context.Context, learnerID uuid.UUID, req *model.TutorChatRequest) (string, error) {
	logger := middleware.GetLogger(ctx).With(slog.String("service", "TutorService"))

	if !s.Configured() {
		s.metrics.TutorRequest(tutorOutcomeUnconfigured)
		logger.Warn("AI tutor requested but not configured")
		return "", model.NewAppError("TUTOR_NOT_CONFIGURED", TutorNotConfiguredMessage, "", model.ErrServiceUnavailable)
	}
	if strings.TrimSpace(req.Message) == "" {
		return "", model.NewAppError("VALIDATION_ERROR", "Message is required.", "message", model.ErrInvalidInput)
	}

	if !s.acquire(learnerID) {
		s.metrics.TutorRequest(tutorOutcomeBusy)
		logger.Warn("Tutor request rejected, another request is in flight")
		return "", model.NewAppError("TUTOR_BUSY", TutorBusyMessage, "", model.ErrConflict)
	}
	defer s.release(learnerID)

	prompt := BuildTutorPrompt(req.Message, req.ConversationHistory)

	start := time.Now()
	reply, err := s.completer.Complete(ctx, prompt)
	s.metrics.ObserveTutorDuration(time.Since(start))
	if err != nil {
		if errors.Is(err, model.ErrServiceUnavailable) {
			s.metrics.TutorRequest(tutorOutcomeUnconfigured)
			logger.Warn("AI tutor is not available", slog.Any("error", err))
			return "", model.NewAppError("TUTOR_NOT_CONFIGURED", TutorNotConfiguredMessage, "", model.ErrServiceUnavailable)
		}
		s.metrics.TutorRequest(tutorOutcomeUpstream)
		logger.Error("AI tutor request failed", slog.Any("error", err))
		return "", model.NewAppError("TUTOR_UPSTREAM_ERROR", TutorFailedMessage, "", errors.Join(model.ErrUpstreamService, err))
	}

	s.metrics.TutorRequest(tutorOutcomeSuccess)
	logger.Info("AI tutor replied", slog.Int("history_len", len(req.ConversationHistory)), slog.Int("reply_len", len(reply)))
	return reply, nil
}

func (s *tutorService) acquire(learnerID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[learnerID]; busy {
		return false
	}
	s.inFlight[learnerID] = struct{}{}
	return true
}

func (s *tutorService) release(learnerID uuid.UUID) {
	s.mu.Lock()
	delete(s.inFlight, learnerID)
	s.mu.Unlock()
}

// BuildTutorPrompt は指示文、会話履歴、今回のメッセージを1つのユーザーターンにまとめる
func BuildTutorPrompt(message string, history []model.ChatMessage) string {
	lines := make([]string, len(history))
	for i, m := range history {
		lines[i] = string(m.Role) + ": " + m.Content
	}

	var b strings.Builder
	b.WriteString(tutorSystemPrompt)
	b.WriteString("\n\nConversation history:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nStudent message: ")
	b.WriteString(message)
	return b.String()
}
