// internal/handlers/vocabulary_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type VocabularyHandler struct {
	service service.VocabularyService
	logger  *slog.Logger
}

func NewVocabularyHandler(s service.VocabularyService, logger *slog.Logger) *VocabularyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyHandler{
		service: s,
		logger:  logger,
	}
}

// ListEntries は学習モード用の単語一覧を返すハンドラ
func (h *VocabularyHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListEntries"))

	resp, err := h.service.ListEntries(r.Context())
	if err != nil {
		logger.Error("Error listing vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary listed successfully", slog.Int("count", resp.Total))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetEntry は単語1件を返すハンドラ
func (h *VocabularyHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetEntry"))

	entryIDStr := chi.URLParam(r, "entry_id")
	entryID, err := strconv.Atoi(entryIDStr)
	if err != nil || entryID <= 0 {
		logger.Warn("Invalid entry ID in URL", slog.String("entry_id_str", entryIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "entry_id must be a positive integer.", "entry_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.Int("entry_id", entryID))

	entry, err := h.service.GetEntry(r.Context(), entryID)
	if err != nil {
		logger.Warn("Error getting vocabulary entry in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entry, logger)
}
