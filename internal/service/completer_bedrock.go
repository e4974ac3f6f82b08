package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go_5_english_tutor/internal/config"
	"go_5_english_tutor/internal/middleware"
	"go_5_english_tutor/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const bedrockAnthropicVersion = "bedrock-2023-05-31"

// Bedrock 上の Claude は Messages API と同じ形の JSON を InvokeModel で送る
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// text は最初のブロックがテキストならその内容を返す。それ以外は空文字。
func (r *claudeResponse) text() string {
	if len(r.Content) == 0 || r.Content[0].Type != "text" {
		return ""
	}
	return r.Content[0].Text
}

// bedrockInvoker は bedrockruntime.Client のうち使うメソッドだけ
type bedrockInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockCompleter は Amazon Bedrock 上の Claude モデルを呼ぶ
type BedrockCompleter struct {
	client    bedrockInvoker
	modelID   string
	maxTokens int
}

// NewBedrockCompleter は設定に応じて認証方法を切り替えて Bedrock クライアントを作る
func NewBedrockCompleter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BedrockCompleter, error) {
	bc := cfg.Tutor.Bedrock

	var awsCfgOpts []func(*awsconfig.LoadOptions) error
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(bc.Region))

	switch bc.AuthType {
	case "static_credentials":
		logger.Info("Configuring Bedrock with static credentials.")
		if bc.AccessKeyID == "" || bc.SecretAccessKey == "" {
			return nil, errors.New("bedrock auth_type is 'static_credentials' but access_key_id or secret_access_key is missing")
		}
		creds := credentials.NewStaticCredentialsProvider(bc.AccessKeyID, bc.SecretAccessKey, "")
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role":
		// SDK が認証情報を探す
		logger.Info("Configuring Bedrock with IAM Role credentials.")
	default:
		logger.Warn("Unknown Bedrock auth_type specified, defaulting to IAM Role.", slog.String("type", bc.AuthType))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsCfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for Bedrock: %w", err)
	}

	logger.Info("Initializing Bedrock completer...", slog.String("model", cfg.Tutor.Model), slog.String("region", bc.Region))
	return newBedrockCompleter(bedrockruntime.NewFromConfig(awsCfg), cfg.Tutor.Model, cfg.Tutor.MaxTokens), nil
}

func newBedrockCompleter(client bedrockInvoker, modelID string, maxTokens int) *BedrockCompleter {
	return &BedrockCompleter{client: client, modelID: modelID, maxTokens: maxTokens}
}

func (c *BedrockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	logger := middleware.GetLogger(ctx)

	body, err := json.Marshal(claudeRequest{
		AnthropicVersion: bedrockAnthropicVersion,
		MaxTokens:        c.maxTokens,
		Messages:         []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal bedrock request: %w", err)
	}

	out, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		logger.Error("Failed to invoke Bedrock model", slog.Any("error", err), slog.String("model", c.modelID))
		return "", fmt.Errorf("%w: bedrock invoke failed: %v", model.ErrUpstreamService, err)
	}

	var parsed claudeResponse
	if err := json.Unmarshal(out.Body, &parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode bedrock response: %v", model.ErrUpstreamService, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: bedrock model error: %s", model.ErrUpstreamService, parsed.Error.Message)
	}
	return parsed.text(), nil
}
