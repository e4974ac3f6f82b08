package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub クレームの UUID を学習者IDとしてコンテキストに入れる。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorization header must be in the form 'Bearer <token>'.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			learnerID, err := ParseLearnerToken(tokenString, cfg.JWT.SecretKey)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", slog.Any("error", err))
				appErr := model.NewAppError("INVALID_TOKEN", "The token is invalid.", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r.WithContext(withLearner(r.Context(), learnerID)))
		})
	}
}

// ParseLearnerToken は HS256 で署名されたトークンを検証し、sub の UUID を返す。
// 有効期限 (exp) があれば jwt ライブラリが検証する。
func ParseLearnerToken(tokenString, secret string) (uuid.UUID, error) {
	if secret == "" {
		return uuid.Nil, errors.New("jwt secret key is not configured")
	}

	claims := &model.LearnerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, errors.New("token is not valid")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return uuid.Nil, errors.New("subject (sub) claim missing")
	}
	learnerID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, err
	}
	return learnerID, nil
}

// GetLearnerIDFromContext はミドルウェアが設定した学習者IDを取り出す
func GetLearnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Learner information was not found in the request context.", "", model.ErrInternalServer)
	}
	return value, nil
}

// withLearner は学習者IDとそれを付けたロガーをコンテキストに入れる
func withLearner(ctx context.Context, learnerID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.LearnerIDKey, learnerID)
	return WithLogger(ctx, GetLogger(ctx).With(slog.String("learner_id", learnerID.String())))
}
