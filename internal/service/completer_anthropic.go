package service

import (
	"context"
	"fmt"
	"log/slog"

	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

// AnthropicCompleter は langchaingo 経由で Anthropic Messages API を呼ぶ
type AnthropicCompleter struct {
	llm       llms.Model
	model     string
	maxTokens int
}

// NewAnthropicCompleter の baseURL は "/v1" まで含める。"/messages" はクライアントが付ける。
func NewAnthropicCompleter(doer llmDoer, baseURL, apiKey, modelName string, maxTokens int) (*AnthropicCompleter, error) {
	opts := []anthropic.Option{
		anthropic.WithToken(apiKey),
		anthropic.WithModel(modelName),
	}
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	if doer != nil {
		opts = append(opts, anthropic.WithHTTPClient(doer))
	}

	llm, err := anthropic.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create anthropic client: %w", err)
	}
	return &AnthropicCompleter{llm: llm, model: modelName, maxTokens: maxTokens}, nil
}

// Complete は最初のブロックがテキスト以外なら空文字を返す
func (c *AnthropicCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithMaxTokens(c.maxTokens))
	if err != nil {
		middleware.GetLogger(ctx).Warn("Anthropic request failed", slog.String("model", c.model), slog.Any("error", err))
		return "", fmt.Errorf("%w: anthropic request failed: %v", model.ErrUpstreamService, err)
	}
	return text, nil
}
