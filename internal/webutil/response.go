// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail()}
	} else if detail, ok := detailForSentinel(err); ok {
		// AppError で包まれていない番兵エラーはコードだけ決めて返す
		errResp = model.APIErrorResponse{Error: detail}
	} else {
		// 予期せぬエラーの中身はクライアントに返さない
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{
			Error: model.ErrorDetail{
				Code:    "INTERNAL_SERVER_ERROR",
				Message: "An internal server error occurred.",
			},
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		// ErrUpstreamService, ErrConfiguration もここ
		return http.StatusInternalServerError
	}
}

func detailForSentinel(err error) (model.ErrorDetail, bool) {
	sentinels := []struct {
		target error
		code   string
	}{
		{model.ErrNotFound, "NOT_FOUND"},
		{model.ErrInvalidInput, "INVALID_INPUT"},
		{model.ErrInvalidState, "INVALID_STATE"},
		{model.ErrConflict, "CONFLICT"},
		{model.ErrForbidden, "FORBIDDEN"},
		{model.ErrServiceUnavailable, "SERVICE_UNAVAILABLE"},
	}
	for _, s := range sentinels {
		if errors.Is(err, s.target) {
			return model.ErrorDetail{Code: s.code, Message: err.Error()}, true
		}
	}
	return model.ErrorDetail{}, false
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build the response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// NewValidationError は validator のエラーを AppError に変換します。
// 最初のエラーを代表としてクライアントに返す。
func NewValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}
	first := validationErrors[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(),
		model.ErrInvalidInput,
	)
}
