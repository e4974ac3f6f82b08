// internal/handlers/practice_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go_5_english_tutor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPracticeHandler_Intro(t *testing.T) {
	router, m := newTestRouter(t, nil)
	m.practice.On("Intro", mock.Anything).Return(&model.PracticeIntroResponse{
		Greeting:        "Hello!",
		SuggestedTopics: []string{"Tell me about your hobbies"},
		Tips:            []string{"Try to use complete sentences"},
	}).Once()

	rr := doRequest(t, router, http.MethodGet, "/api/v1/practice", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"suggested_topics":["Tell me about your hobbies"]`)
}

func TestPracticeHandler_PostMessage(t *testing.T) {
	ts := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(m *testMocks)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系",
			body: model.PracticeMessageRequest{Message: "I like hiking."},
			setupMock: func(m *testMocks) {
				m.practice.On("Reply", mock.Anything, &model.PracticeMessageRequest{Message: "I like hiking."}).
					Return(&model.PracticeReply{Text: "That sounds great! What made you choose that?", Sender: "ai", Timestamp: ts}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: message なし",
			body:       map[string]string{},
			setupMock:  func(m *testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 空白だけ",
			body: model.PracticeMessageRequest{Message: "  "},
			setupMock: func(m *testMocks) {
				m.practice.On("Reply", mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "Message is required.", "message", model.ErrInvalidInput)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			tt.setupMock(m)

			rr := doRequest(t, router, http.MethodPost, "/api/v1/practice/messages", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				detail := decodeError(t, rr)
				assert.Equal(t, tt.wantCode, detail.Code)
				assert.Equal(t, "message", detail.Field)
				return
			}
			var got model.PracticeReply
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, "ai", got.Sender)
			assert.True(t, ts.Equal(got.Timestamp))
		})
	}
}
