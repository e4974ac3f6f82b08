// internal/handlers/tutor_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"
)

// TutorHandler はチューター API。チャットの応答は成功/失敗とも {success, message|error} の形で返す。
type TutorHandler struct {
	service service.TutorService
	logger  *slog.Logger
}

func NewTutorHandler(s service.TutorService, logger *slog.Logger) *TutorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TutorHandler{
		service: s,
		logger:  logger,
	}
}

// Intro はチャット画面の挨拶と話題を返す
func (h *TutorHandler) Intro(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "TutorIntro"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Intro(r.Context()), logger)
}

// Chat はメッセージと会話履歴を言語モデルに中継する。
// 未設定なら本文を読む前に 503 を返す。
func (h *TutorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "TutorChat"))
	learnerID, logger, ok := learnerFrom(w, r, logger)
	if !ok {
		return
	}

	if !h.service.Configured() {
		logger.Warn("AI tutor is not configured")
		respondTutorError(w, logger, http.StatusServiceUnavailable, service.TutorNotConfiguredMessage)
		return
	}

	var req model.TutorChatRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		// 読めない本文も上流の失敗と同じ 500 で返す
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		respondTutorError(w, logger, http.StatusInternalServerError, service.TutorFailedMessage)
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		respondTutorError(w, logger, http.StatusBadRequest, tutorErrorMessage(webutil.NewValidationError(err)))
		return
	}

	reply, err := h.service.Chat(r.Context(), learnerID, &req)
	if err != nil {
		respondTutorError(w, logger, webutil.MapErrorToStatusCode(err), tutorErrorMessage(err))
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.TutorChatResponse{Success: true, Message: reply}, logger)
}

func respondTutorError(w http.ResponseWriter, logger *slog.Logger, code int, msg string) {
	webutil.RespondWithJSON(w, code, model.TutorChatErrorResponse{Success: false, Error: msg}, logger)
}

// tutorErrorMessage は AppError のメッセージだけを返す。それ以外は固定文言。
func tutorErrorMessage(err error) string {
	var appErr *model.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return service.TutorFailedMessage
}
