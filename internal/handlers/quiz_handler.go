// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"

	"github.com/google/uuid"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// learnerFrom はコンテキストから学習者IDを取り出し、ロガーに付ける。
// 取れなければエラーレスポンスを書いて false を返す。
func learnerFrom(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, *slog.Logger, bool) {
	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Error("Learner ID missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, logger, false
	}
	return learnerID, logger.With(slog.String("learner_id", learnerID.String())), true
}

// GetQuiz は現在のセッションのスナップショットを返す
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetQuiz"))
	learnerID, logger, ok := learnerFrom(w, r, logger)
	if !ok {
		return
	}

	snap, err := h.service.GetSnapshot(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, snap, logger)
}

// StartQuiz は learning からクイズを開始する
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartQuiz"))
	learnerID, logger, ok := learnerFrom(w, r, logger)
	if !ok {
		return
	}

	snap, err := h.service.Start(r.Context(), learnerID)
	if err != nil {
		logger.Warn("Error starting quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz started successfully", slog.String("session_id", snap.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, snap, logger)
}

// SubmitAnswer は現在の問題に回答する
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))
	learnerID, logger, ok := learnerFrom(w, r, logger)
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, webutil.NewValidationError(err))
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), learnerID, &req)
	if err != nil {
		logger.Warn("Error submitting answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// ResetQuiz はクイズをやり直すか learning に戻す。ボディは省略できる。
func (h *QuizHandler) ResetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetQuiz"))
	learnerID, logger, ok := learnerFrom(w, r, logger)
	if !ok {
		return
	}

	var req model.ResetQuizRequest
	if err := webutil.DecodeOptionalJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, webutil.NewValidationError(err))
		return
	}

	snap, err := h.service.Reset(r.Context(), learnerID, &req)
	if err != nil {
		logger.Warn("Error resetting quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, snap, logger)
}

// AbandonQuiz はどの段階からでも learning に戻す
func (h *QuizHandler) AbandonQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AbandonQuiz"))
	learnerID, logger, ok := learnerFrom(w, r, logger)
	if !ok {
		return
	}

	snap, err := h.service.Abandon(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, snap, logger)
}

// GetResults は完了したクイズの結果を返す
func (h *QuizHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetResults"))
	learnerID, logger, ok := learnerFrom(w, r, logger)
	if !ok {
		return
	}

	results, err := h.service.GetResults(r.Context(), learnerID)
	if err != nil {
		logger.Warn("Error getting quiz results in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, results, logger)
}
