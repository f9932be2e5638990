// Package ai provides LLM provider implementations for GitQuill.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/gitquill/gitquill/internal/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultOpenAIModel is the default model for OpenAI.
	DefaultOpenAIModel = "gpt-4o-mini"

	// DefaultMaxTokens caps the completion length; a commit message
	// rarely needs more.
	DefaultMaxTokens = 50

	// DefaultTimeout is the transport-level timeout for API calls.
	// The session itself has no timeout; a timed-out call surfaces as a
	// provider failure and degrades to the fallback message.
	DefaultTimeout = 30 * time.Second
)

// OpenAIProvider implements the Provider interface for OpenAI.
type OpenAIProvider struct {
	client         *openai.Client
	config         ProviderConfig
	promptTemplate *PromptTemplate
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(config ProviderConfig) *OpenAIProvider {
	if config.Model == "" {
		config.Model = DefaultOpenAIModel
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.Endpoint != "" {
		clientConfig.BaseURL = config.Endpoint
	}
	clientConfig.HTTPClient = &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &OpenAIProvider{
		client:         openai.NewClientWithConfig(clientConfig),
		config:         config,
		promptTemplate: NewPromptTemplate(),
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return ProviderNameOpenAI
}

// GenerateCommit generates a commit message using OpenAI.
func (p *OpenAIProvider) GenerateCommit(ctx context.Context, diff string) (string, error) {
	if p.config.APIKey == "" {
		return "", apperrors.NewMissingAPIKeyError(ProviderNameOpenAI)
	}

	userPrompt, err := p.promptTemplate.RenderUserPrompt(diff)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: p.promptTemplate.GetSystemPrompt(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userPrompt,
			},
		},
		MaxTokens: p.config.MaxTokens,
	}

	apperrors.LogAPIRequest(ProviderNameOpenAI, p.config.Model, len(userPrompt))
	startTime := time.Now()

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apperrors.NewProviderError(ProviderNameOpenAI, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewProviderError(ProviderNameOpenAI, errors.New("empty response"))
	}

	rawText := resp.Choices[0].Message.Content
	apperrors.LogAPIResponse(ProviderNameOpenAI, len(rawText), time.Since(startTime))

	return Normalize(rawText), nil
}
