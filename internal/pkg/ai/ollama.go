// Package ai provides LLM provider implementations for GitQuill.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/gitquill/gitquill/internal/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const (
	// DefaultOllamaModel is the default model for Ollama.
	DefaultOllamaModel = "codellama"

	// DefaultOllamaServerURL is the default local Ollama server.
	DefaultOllamaServerURL = "http://localhost:11434"
)

// OllamaProvider implements the Provider interface for a local Ollama server.
// No API key is required.
type OllamaProvider struct {
	llm            llms.Model
	config         ProviderConfig
	promptTemplate *PromptTemplate
	initErr        error
}

// NewOllamaProvider creates a new Ollama provider. Client construction errors
// are deferred to the first GenerateCommit call so the registry stays total.
func NewOllamaProvider(config ProviderConfig) *OllamaProvider {
	if config.Model == "" {
		config.Model = DefaultOllamaModel
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	serverURL := config.Endpoint
	if serverURL == "" {
		serverURL = DefaultOllamaServerURL
	}

	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(config.Model),
	)

	return &OllamaProvider{
		llm:            llm,
		config:         config,
		promptTemplate: NewPromptTemplate(),
		initErr:        err,
	}
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string {
	return ProviderNameOllama
}

// GenerateCommit generates a commit message using the local Ollama server.
func (p *OllamaProvider) GenerateCommit(ctx context.Context, diff string) (string, error) {
	if p.initErr != nil {
		return "", apperrors.NewProviderError(ProviderNameOllama, p.initErr)
	}

	userPrompt, err := p.promptTemplate.RenderUserPrompt(diff)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, p.promptTemplate.GetSystemPrompt()),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	apperrors.LogAPIRequest(ProviderNameOllama, p.config.Model, len(userPrompt))
	startTime := time.Now()

	resp, err := p.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(p.config.MaxTokens),
	)
	if err != nil {
		return "", apperrors.NewProviderError(ProviderNameOllama, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", apperrors.NewProviderError(ProviderNameOllama, errors.New("empty response"))
	}

	rawText := resp.Choices[0].Content
	apperrors.LogAPIResponse(ProviderNameOllama, len(rawText), time.Since(startTime))

	return Normalize(rawText), nil
}
