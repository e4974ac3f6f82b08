// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/handlers"
	"go_5_english_tutor/internal/metrics"
	"go_5_english_tutor/internal/model"
	repomocks "go_5_english_tutor/internal/repository/mocks"
	"go_5_english_tutor/internal/service/mocks"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testMocks はルーターに差し込むサービスのモック一式
type testMocks struct {
	vocabulary *mocks.VocabularyService
	quiz       *mocks.QuizService
	tutor      *mocks.TutorService
	practice   *mocks.PracticeService
	dashboard  *mocks.DashboardService
	wordRepo   *repomocks.WordBankRepository
}

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", config.LearnerIDHeader},
		},
	}
}

// newTestRouter はモックのサービスでルーターを組み立てる
func newTestRouter(t *testing.T, cfg *config.Config) (http.Handler, *testMocks) {
	t.Helper()
	m := &testMocks{
		vocabulary: mocks.NewVocabularyService(t),
		quiz:       mocks.NewQuizService(t),
		tutor:      mocks.NewTutorService(t),
		practice:   mocks.NewPracticeService(t),
		dashboard:  mocks.NewDashboardService(t),
		wordRepo:   repomocks.NewWordBankRepository(t),
	}
	if cfg == nil {
		cfg = testConfig()
	}
	router := handlers.NewRouter(cfg, handlers.Handlers{
		Vocabulary: handlers.NewVocabularyHandler(m.vocabulary, testLogger),
		Quiz:       handlers.NewQuizHandler(m.quiz, testLogger),
		Tutor:      handlers.NewTutorHandler(m.tutor, testLogger),
		Practice:   handlers.NewPracticeHandler(m.practice, testLogger),
		Dashboard:  handlers.NewDashboardHandler(m.dashboard, testLogger),
		Health:     handlers.NewHealthHandler(m.wordRepo, true, testLogger),
	}, metrics.New(), testLogger)
	return router, m
}

// doRequest はルーターにリクエストを送ってレコーダーを返す。body が string ならそのまま送る。
func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = strings.NewReader(s)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err, "Failed to marshal request body")
			reader = bytes.NewReader(b)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスの中身を取り出す
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Error
}

func learnerHeader(id string) map[string]string {
	return map[string]string{config.LearnerIDHeader: id}
}
