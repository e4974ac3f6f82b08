// internal/handlers/practice_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"
)

type PracticeHandler struct {
	service service.PracticeService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		service: s,
		logger:  logger,
	}
}

// Intro は会話練習の挨拶・話題・ヒントを返す
func (h *PracticeHandler) Intro(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PracticeIntro"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Intro(r.Context()), logger)
}

// PostMessage は会話相手の返答を返す
func (h *PracticeHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PracticePostMessage"))

	var req model.PracticeMessageRequest
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

	reply, err := h.service.Reply(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, reply, logger)
}
