// internal/handlers/dashboard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/service"
	"go_5_english_tutor/internal/webutil"
)

// DashboardHandler はダッシュボード・マイページ・レベル選択の表示データを返す
type DashboardHandler struct {
	service service.DashboardService
	logger  *slog.Logger
}

func NewDashboardHandler(s service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardHandler{
		service: s,
		logger:  logger,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDashboard"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.GetDashboard(r.Context()), logger)
}

func (h *DashboardHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProfile"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.GetProfile(r.Context()), logger)
}

func (h *DashboardHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListLevels"))
	webutil.RespondWithJSON(w, http.StatusOK, h.service.ListLevels(r.Context()), logger)
}
