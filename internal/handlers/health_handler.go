// internal/handlers/health_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/repository"
	"go_5_english_tutor/internal/webutil"
)

type healthResponse struct {
	Status       string `json:"status"`
	WordBankSize int    `json:"word_bank_size"`
	TutorEnabled bool   `json:"tutor_enabled"`
}

type HealthHandler struct {
	wordRepo     repository.WordBankRepository
	tutorEnabled bool
	logger       *slog.Logger
}

func NewHealthHandler(wordRepo repository.WordBankRepository, tutorEnabled bool, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{wordRepo: wordRepo, tutorEnabled: tutorEnabled, logger: logger}
}

// Health は死活確認。単語帳の語数とチューターの有効/無効も返す。
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Health"))
	webutil.RespondWithJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		WordBankSize: h.wordRepo.Count(),
		TutorEnabled: h.tutorEnabled,
	}, logger)
}
