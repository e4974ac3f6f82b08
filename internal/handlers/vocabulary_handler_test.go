// internal/handlers/vocabulary_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go_5_english_tutor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVocabularyHandler_ListEntries(t *testing.T) {
	router, m := newTestRouter(t, nil)
	list := &model.VocabularyListResponse{
		Total: 1,
		Entries: []model.VocabularyEntry{
			{ID: 1, Term: "Apple", Meaning: "A round fruit", KoreanMeaning: "사과", Difficulty: model.DifficultyBeginner},
		},
	}
	m.vocabulary.On("ListEntries", mock.Anything).Return(list, nil).Once()

	rr := doRequest(t, router, http.MethodGet, "/api/v1/vocabulary", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got model.VocabularyListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, *list, got)
	assert.Contains(t, rr.Body.String(), `"korean_meaning":"사과"`)
}

func TestVocabularyHandler_GetEntry(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(m *testMocks)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系",
			path: "/api/v1/vocabulary/2",
			setupMock: func(m *testMocks) {
				m.vocabulary.On("GetEntry", mock.Anything, 2).
					Return(&model.VocabularyEntry{ID: 2, Term: "Beautiful", Meaning: "Pleasing to look at"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: 数値でないID",
			path:       "/api/v1/vocabulary/abc",
			setupMock:  func(m *testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_URL_PARAM",
		},
		{
			name:       "異常系: 0以下のID",
			path:       "/api/v1/vocabulary/0",
			setupMock:  func(m *testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_URL_PARAM",
		},
		{
			name: "異常系: 見つからない",
			path: "/api/v1/vocabulary/42",
			setupMock: func(m *testMocks) {
				m.vocabulary.On("GetEntry", mock.Anything, 42).
					Return(nil, model.NewAppError("ENTRY_NOT_FOUND", "The vocabulary entry was not found.", "entry_id", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "ENTRY_NOT_FOUND",
		},
		{
			name: "異常系: 想定外のエラーは中身を出さない",
			path: "/api/v1/vocabulary/3",
			setupMock: func(m *testMocks) {
				m.vocabulary.On("GetEntry", mock.Anything, 3).Return(nil, errors.New("secret detail")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			tt.setupMock(m)

			rr := doRequest(t, router, http.MethodGet, tt.path, nil, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rr).Code)
				assert.NotContains(t, rr.Body.String(), "secret detail")
			}
		})
	}
}
