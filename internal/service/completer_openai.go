package service

import (
	"context"
	"fmt"
	"strings"

	"go_5_english_tutor/internal/model"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAICompleter は OpenAI 互換の Chat Completions API を呼ぶ
type OpenAICompleter struct {
	llm       llms.Model
	maxTokens int
}

func NewOpenAICompleter(doer llmDoer, baseURL, apiKey, modelName string, maxTokens int) (*OpenAICompleter, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if doer != nil {
		opts = append(opts, openai.WithHTTPClient(doer))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &OpenAICompleter{llm: llm, maxTokens: maxTokens}, nil
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, llms.WithMaxTokens(c.maxTokens))
	if err != nil {
		return "", fmt.Errorf("%w: openai request failed: %v", model.ErrUpstreamService, err)
	}
	return strings.TrimSpace(text), nil
}
