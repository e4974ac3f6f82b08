package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/model"
)

// Completer は言語モデルにプロンプトを1ターン分送って応答テキストを受け取る
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// --- unconfiguredCompleter ---

// unconfiguredCompleter は認証情報が無いときに使う。常に ErrServiceUnavailable を返す。
type unconfiguredCompleter struct {
	reason string
}

func (c *unconfiguredCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("%w: %s", model.ErrServiceUnavailable, c.reason)
}

// IsConfigured は実際に上流へ送れる Completer かどうかを返す
func IsConfigured(c Completer) bool {
	if c == nil {
		return false
	}
	_, unconfigured := c.(*unconfiguredCompleter)
	return !unconfigured
}

// llmDoer は langchaingo の各クライアントに渡す HTTP クライアント
type llmDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// hasAPIKey はプレースホルダーのままのキーを未設定とみなす
func hasAPIKey(key string) bool {
	return key != "" && key != config.PlaceholderAPIKey
}

// --- NewCompleter ファクトリ関数 ---
func NewCompleter(cfg *config.Config, logger *slog.Logger) Completer {
	if logger == nil {
		logger = slog.Default()
	}
	tc := cfg.Tutor
	httpClient := &http.Client{Timeout: tc.Timeout}

	switch tc.Provider {
	case "anthropic":
		if !hasAPIKey(tc.APIKey) {
			logger.Warn("ANTHROPIC_API_KEY is not set, AI tutor is disabled")
			return &unconfiguredCompleter{reason: "anthropic api key is not set"}
		}
		logger.Info("Initializing Anthropic completer...", slog.String("model", tc.Model))
		c, err := NewAnthropicCompleter(httpClient, tc.BaseURL, tc.APIKey, tc.Model, tc.MaxTokens)
		if err != nil {
			logger.Error("Failed to initialize Anthropic completer, AI tutor is disabled", slog.Any("error", err))
			return &unconfiguredCompleter{reason: err.Error()}
		}
		return c
	case "openai":
		if !hasAPIKey(tc.APIKey) {
			logger.Warn("Tutor API key is not set, AI tutor is disabled", slog.String("provider", tc.Provider))
			return &unconfiguredCompleter{reason: "openai api key is not set"}
		}
		logger.Info("Initializing OpenAI completer...", slog.String("model", tc.Model))
		c, err := NewOpenAICompleter(httpClient, tc.BaseURL, tc.APIKey, tc.Model, tc.MaxTokens)
		if err != nil {
			logger.Error("Failed to initialize OpenAI completer, AI tutor is disabled", slog.Any("error", err))
			return &unconfiguredCompleter{reason: err.Error()}
		}
		return c
	case "bedrock":
		c, err := NewBedrockCompleter(context.Background(), cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize Bedrock completer, AI tutor is disabled", slog.Any("error", err))
			return &unconfiguredCompleter{reason: err.Error()}
		}
		return c
	default:
		logger.Warn("Unknown tutor provider, AI tutor is disabled", slog.String("provider", tc.Provider))
		return &unconfiguredCompleter{reason: "unknown tutor provider " + tc.Provider}
	}
}
