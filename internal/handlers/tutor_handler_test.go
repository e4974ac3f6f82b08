// internal/handlers/tutor_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go_5_english_tutor/internal/model"
	"go_5_english_tutor/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTutorHandler_Chat(t *testing.T) {
	learnerID := uuid.New()
	validReq := model.TutorChatRequest{
		Message:             "I goed to school yesterday.",
		ConversationHistory: []model.ChatMessage{{Role: model.RoleAssistant, Content: "Hello!"}},
	}

	tests := []struct {
		name       string
		path       string
		body       interface{}
		setupMock  func(m *testMocks)
		wantStatus int
		want       map[string]interface{}
	}{
		{
			name: "正常系",
			path: "/api/v1/tutor/chat",
			body: validReq,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
				m.tutor.On("Chat", mock.Anything, learnerID, &validReq).
					Return("Almost! We say \"I went to school.\"", nil).Once()
			},
			wantStatus: http.StatusOK,
			want:       map[string]interface{}{"success": true, "message": "Almost! We say \"I went to school.\""},
		},
		{
			name: "正常系: 旧パス",
			path: "/api/chat",
			body: validReq,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
				m.tutor.On("Chat", mock.Anything, learnerID, &validReq).Return("ok", nil).Once()
			},
			wantStatus: http.StatusOK,
			want:       map[string]interface{}{"success": true, "message": "ok"},
		},
		{
			name: "異常系: 未設定なら本文より先に 503",
			path: "/api/v1/tutor/chat",
			body: `not json`,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(false).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]interface{}{"success": false, "error": service.TutorNotConfiguredMessage},
		},
		{
			name: "正常系: 空の応答でも message キーを返す",
			path: "/api/v1/tutor/chat",
			body: validReq,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
				m.tutor.On("Chat", mock.Anything, learnerID, &validReq).Return("", nil).Once()
			},
			wantStatus: http.StatusOK,
			want:       map[string]interface{}{"success": true, "message": ""},
		},
		{
			name: "異常系: 壊れた JSON は 500",
			path: "/api/v1/tutor/chat",
			body: `{"message": `,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
			},
			wantStatus: http.StatusInternalServerError,
			want:       map[string]interface{}{"success": false, "error": service.TutorFailedMessage},
		},
		{
			name: "異常系: message なし",
			path: "/api/v1/tutor/chat",
			body: map[string]interface{}{"conversationHistory": []interface{}{}},
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
			},
			wantStatus: http.StatusBadRequest,
			want:       map[string]interface{}{"success": false, "error": "Message is required."},
		},
		{
			name: "異常系: 上流エラー",
			path: "/api/v1/tutor/chat",
			body: validReq,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
				m.tutor.On("Chat", mock.Anything, learnerID, &validReq).
					Return("", model.NewAppError("TUTOR_UPSTREAM_ERROR", service.TutorFailedMessage, "", errors.Join(model.ErrUpstreamService, errors.New("529 overloaded")))).Once()
			},
			wantStatus: http.StatusInternalServerError,
			want:       map[string]interface{}{"success": false, "error": service.TutorFailedMessage},
		},
		{
			name: "異常系: 前のリクエストが処理中",
			path: "/api/v1/tutor/chat",
			body: validReq,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
				m.tutor.On("Chat", mock.Anything, learnerID, &validReq).
					Return("", model.NewAppError("TUTOR_BUSY", service.TutorBusyMessage, "", model.ErrConflict)).Once()
			},
			wantStatus: http.StatusConflict,
			want:       map[string]interface{}{"success": false, "error": service.TutorBusyMessage},
		},
		{
			name: "異常系: AppError 以外は固定文言",
			path: "/api/v1/tutor/chat",
			body: validReq,
			setupMock: func(m *testMocks) {
				m.tutor.On("Configured").Return(true).Once()
				m.tutor.On("Chat", mock.Anything, learnerID, &validReq).Return("", errors.New("raw")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			want:       map[string]interface{}{"success": false, "error": service.TutorFailedMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, nil)
			tt.setupMock(m)

			rr := doRequest(t, router, http.MethodPost, tt.path, tt.body, learnerHeader(learnerID.String()))

			assert.Equal(t, tt.wantStatus, rr.Code)
			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got), "body: %s", rr.Body.String())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTutorHandler_Intro(t *testing.T) {
	router, m := newTestRouter(t, nil)
	m.tutor.On("Intro", mock.Anything).Return(&model.TutorIntroResponse{
		Greeting:        "안녕하세요! 저는 Alex입니다.",
		SuggestedTopics: []string{"자기소개 연습하기"},
		Configured:      false,
	}).Once()

	rr := doRequest(t, router, http.MethodGet, "/api/v1/tutor", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got model.TutorIntroResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.False(t, got.Configured)
	assert.Len(t, got.SuggestedTopics, 1)
}
