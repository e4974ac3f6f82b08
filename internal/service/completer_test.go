package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// sentChatRequest は上流に届いたリクエストのうち確認する項目だけ
type sentChatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
}

func TestAnthropicCompleter_Complete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
	}{
		{
			name:   "正常系",
			status: http.StatusOK,
			body:   `{"content":[{"type":"text","text":"Great question!"}]}`,
			want:   "Great question!",
		},
		{
			name:   "テキスト以外のブロックは空文字",
			status: http.StatusOK,
			body:   `{"content":[{"type":"tool_use","id":"t1","name":"lookup","input":{}}]}`,
			want:   "",
		},
		{
			name:    "異常系: 認証エラー",
			status:  http.StatusUnauthorized,
			body:    `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`,
			wantErr: model.ErrUpstreamService,
		},
		{
			name:    "異常系: 壊れたJSON",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			wantErr: model.ErrUpstreamService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReq sentChatRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/messages", r.URL.Path)
				assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
				assert.NotEmpty(t, r.Header.Get("anthropic-version"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewAnthropicCompleter(server.Client(), server.URL+"/v1/", "test-key", "claude-3-haiku-20240307", 1000)
			require.NoError(t, err)
			got, err := c.Complete(context.Background(), "hello")

			assert.Equal(t, "claude-3-haiku-20240307", gotReq.Model)
			assert.Equal(t, 1000, gotReq.MaxTokens)
			require.Len(t, gotReq.Messages, 1)
			assert.Equal(t, "user", gotReq.Messages[0].Role)
			assert.Contains(t, string(gotReq.Messages[0].Content), "hello")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAnthropicCompleter_MissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewAnthropicCompleter(nil, "", "", "m", 10)

	assert.Error(t, err)
}

func TestAnthropicCompleter_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c, err := NewAnthropicCompleter(server.Client(), server.URL+"/v1", "k", "m", 10)
	require.NoError(t, err)
	_, err = c.Complete(ctx, "hello")
	assert.ErrorIs(t, err, model.ErrUpstreamService)
}

func TestOpenAICompleter_Complete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
	}{
		{
			name:   "正常系",
			status: http.StatusOK,
			body:   `{"choices":[{"message":{"content":"  Nice to meet you!  "}}]}`,
			want:   "Nice to meet you!",
		},
		{
			name:    "異常系: APIエラー",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"rate limited"}}`,
			wantErr: model.ErrUpstreamService,
		},
		{
			name:    "異常系: choices が空",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: model.ErrUpstreamService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

				var req sentChatRequest
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "gpt-4o-mini", req.Model)
				require.Len(t, req.Messages, 1)
				assert.Contains(t, string(req.Messages[0].Content), "hi")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewOpenAICompleter(server.Client(), server.URL+"/v1", "sk-test", "gpt-4o-mini", 500)
			require.NoError(t, err)
			got, err := c.Complete(context.Background(), "hi")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// fakeBedrock は InvokeModel の入力を記録して決まった応答を返す
type fakeBedrock struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeBedrock) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestBedrockCompleter_Complete(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		fake := &fakeBedrock{body: `{"content":[{"type":"text","text":"Hi from Bedrock"}]}`}
		c := newBedrockCompleter(fake, "anthropic.claude-3-haiku-20240307-v1:0", 1000)

		got, err := c.Complete(context.Background(), "hello")

		require.NoError(t, err)
		assert.Equal(t, "Hi from Bedrock", got)
		require.NotNil(t, fake.input)
		assert.Equal(t, "anthropic.claude-3-haiku-20240307-v1:0", aws.ToString(fake.input.ModelId))
		assert.Equal(t, "application/json", aws.ToString(fake.input.ContentType))

		var sent claudeRequest
		require.NoError(t, json.Unmarshal(fake.input.Body, &sent))
		assert.Equal(t, bedrockAnthropicVersion, sent.AnthropicVersion)
		assert.Equal(t, 1000, sent.MaxTokens)
		assert.Equal(t, "hello", sent.Messages[0].Content)
	})

	t.Run("異常系: 呼び出し失敗", func(t *testing.T) {
		c := newBedrockCompleter(&fakeBedrock{err: errors.New("AccessDeniedException")}, "m", 10)
		_, err := c.Complete(context.Background(), "hello")
		assert.ErrorIs(t, err, model.ErrUpstreamService)
	})

	t.Run("異常系: 壊れた応答", func(t *testing.T) {
		c := newBedrockCompleter(&fakeBedrock{body: "not json"}, "m", 10)
		_, err := c.Complete(context.Background(), "hello")
		assert.ErrorIs(t, err, model.ErrUpstreamService)
	})
}

func TestNewCompleter(t *testing.T) {
	tests := []struct {
		name           string
		tutor          config.TutorConfig
		wantConfigured bool
		wantType       interface{}
	}{
		{
			name:           "anthropic: キーあり",
			tutor:          config.TutorConfig{Provider: "anthropic", APIKey: "sk-ant-xxx", BaseURL: "https://api.anthropic.com"},
			wantConfigured: true,
			wantType:       &AnthropicCompleter{},
		},
		{
			name:  "anthropic: キーなし",
			tutor: config.TutorConfig{Provider: "anthropic"},
		},
		{
			name:  "anthropic: プレースホルダー",
			tutor: config.TutorConfig{Provider: "anthropic", APIKey: config.PlaceholderAPIKey},
		},
		{
			name:           "openai: キーあり",
			tutor:          config.TutorConfig{Provider: "openai", APIKey: "sk-xxx", BaseURL: "https://api.openai.com/v1"},
			wantConfigured: true,
			wantType:       &OpenAICompleter{},
		},
		{
			name:  "bedrock: 静的認証でキーなし",
			tutor: config.TutorConfig{Provider: "bedrock", Bedrock: config.BedrockConfig{Region: "us-east-1", AuthType: "static_credentials"}},
		},
		{
			name:           "bedrock: 静的認証",
			tutor:          config.TutorConfig{Provider: "bedrock", Model: "m", Bedrock: config.BedrockConfig{Region: "us-east-1", AuthType: "static_credentials", AccessKeyID: "AKIA", SecretAccessKey: "secret"}},
			wantConfigured: true,
			wantType:       &BedrockCompleter{},
		},
		{
			name:  "不明なプロバイダー",
			tutor: config.TutorConfig{Provider: "llama", APIKey: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompleter(&config.Config{Tutor: tt.tutor}, testLogger)

			require.NotNil(t, c)
			assert.Equal(t, tt.wantConfigured, IsConfigured(c))
			if tt.wantType != nil {
				assert.IsType(t, tt.wantType, c)
			} else {
				_, err := c.Complete(context.Background(), "hello")
				assert.ErrorIs(t, err, model.ErrServiceUnavailable)
			}
		})
	}
}
