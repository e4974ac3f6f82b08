package webutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go_5_english_tutor/internal/model"
)

// maxBodyBytes はリクエストボディの上限 (会話履歴を含むので少し大きめ)
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラー。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	return decode(r, dst, false)
}

// DecodeOptionalJSONBody はボディが空なら dst をそのままにして nil を返す
func DecodeOptionalJSONBody(r *http.Request, dst interface{}) error {
	return decode(r, dst, true)
}

func decode(r *http.Request, dst interface{}, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: request body is empty", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF && allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}
