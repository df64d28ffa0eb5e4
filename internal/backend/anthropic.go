package backend

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicBackend implements LLMBackend using the Anthropic messages API.
// This is the default provider.
type AnthropicBackend struct {
	client       anthropic.Client
	defaultModel string
}

// AnthropicConfig holds configuration for the Anthropic backend.
type AnthropicConfig struct {
	APIKey       string
	BaseURL      string // Optional: for proxies or compatible endpoints
	DefaultModel string
}

// NewAnthropicBackend creates a new Anthropic backend.
func NewAnthropicBackend(cfg AnthropicConfig) (*AnthropicBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key not provided (set ANTHROPIC_API_KEY)")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicBackend{
		client:       anthropic.NewClient(opts...),
		defaultModel: cfg.DefaultModel,
	}, nil
}

// Generate implements LLMBackend.
func (b *AnthropicBackend) Generate(ctx context.Context, prompt string, model string, maxTokens int) (string, error) {
	if model == "" {
		model = b.defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	message, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("anthropic returned no content")
	}

	return message.Content[0].Text, nil
}

// Name implements LLMBackend.
func (b *AnthropicBackend) Name() string {
	return "anthropic"
}

// Close implements LLMBackend.
func (b *AnthropicBackend) Close() error {
	return nil
}
