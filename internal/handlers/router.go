// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/metrics"
	"go_5_english_tutor/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers はルーターに載せるハンドラ一式
type Handlers struct {
	Vocabulary *VocabularyHandler
	Quiz       *QuizHandler
	Tutor      *TutorHandler
	Practice   *PracticeHandler
	Dashboard  *DashboardHandler
	Health     *HealthHandler
}

// NewRouter はミドルウェアとルートを組み立てる
func NewRouter(cfg *config.Config, h Handlers, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(m.Middleware)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	// チューターの応答待ちより短いとタイムアウトで切れてしまう
	if cfg.Server.WriteTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.Server.WriteTimeout))
	}

	learner := middleware.LearnerMiddleware(cfg)

	r.Route("/api/v1", func(r chi.Router) {
		// --- 学習者に紐づかない表示用データ ---
		r.Get("/vocabulary", h.Vocabulary.ListEntries)
		r.Get("/vocabulary/{entry_id}", h.Vocabulary.GetEntry)
		r.Get("/tutor", h.Tutor.Intro)
		r.Get("/practice", h.Practice.Intro)
		r.Post("/practice/messages", h.Practice.PostMessage)
		r.Get("/dashboard", h.Dashboard.GetDashboard)
		r.Get("/profile", h.Dashboard.GetProfile)
		r.Get("/levels", h.Dashboard.ListLevels)

		// --- 学習者ごとの状態を持つもの ---
		r.Group(func(r chi.Router) {
			r.Use(learner)

			r.Route("/quiz", func(r chi.Router) {
				r.Get("/", h.Quiz.GetQuiz)
				r.Delete("/", h.Quiz.AbandonQuiz)
				r.Post("/start", h.Quiz.StartQuiz)
				r.Post("/answers", h.Quiz.SubmitAnswer)
				r.Post("/reset", h.Quiz.ResetQuiz)
				r.Get("/results", h.Quiz.GetResults)
			})
			r.Post("/tutor/chat", h.Tutor.Chat)
		})
	})

	// 旧フロントエンドが叩くパス
	r.With(learner).Post("/api/chat", h.Tutor.Chat)

	r.Get("/health", h.Health.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}
