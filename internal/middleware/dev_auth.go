// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/webutil"

	"github.com/google/uuid"
)

// LearnerHeaderMiddleware は認証を使わないとき用。
// X-Learner-ID ヘッダーの UUID を学習者IDにする。ヘッダーが無ければゲスト。
func LearnerHeaderMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		learnerID := model.GuestLearnerID

		if raw := r.Header.Get(config.LearnerIDHeader); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				logger := GetLogger(r.Context())
				logger.Warn("Invalid learner ID header", "value", raw)
				appErr := model.NewAppError("INVALID_LEARNER_ID", config.LearnerIDHeader+" must be a UUID.", config.LearnerIDHeader, model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
				return
			}
			learnerID = parsed
		}

		next.ServeHTTP(w, r.WithContext(withLearner(r.Context(), learnerID)))
	})
}

// LearnerMiddleware は auth.enabled に応じてどちらかのミドルウェアを返す
func LearnerMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	if cfg.Auth.Enabled {
		return JWTAuthMiddleware(cfg)
	}
	return LearnerHeaderMiddleware
}
