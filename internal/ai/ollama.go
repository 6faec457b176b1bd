package ai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Abishek0612/video-quiz-generator-api/internal/config"
)

// OllamaClient implements Generator against an Ollama server through its
// OpenAI-compatible API.
type OllamaClient struct {
	client   *openai.Client
	model    string
	sampling config.GenerationConfig
	logger   *zap.Logger
}

// NewOllamaClient creates a generation client for the given Ollama server.
func NewOllamaClient(cfg config.OllamaConfig, sampling config.GenerationConfig, logger *zap.Logger) *OllamaClient {
	clientCfg := openai.DefaultConfig("ollama") // Ollama ignores the token but the client requires one
	clientCfg.BaseURL = cfg.URL + "/v1"
	return &OllamaClient{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		sampling: sampling,
		logger:   logger,
	}
}

// Chat sends the framing and instruction messages and returns the raw
// assistant content.
func (o *OllamaClient) Chat(ctx context.Context, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: o.sampling.Temperature,
		TopP:        o.sampling.TopP,
		MaxTokens:   o.sampling.MaxTokens,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: backend returned no choices")
	}

	content := resp.Choices[0].Message.Content
	o.logger.Debug("chat completion received",
		zap.String("model", o.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int("content_length", len(content)),
	)
	return content, nil
}

// ListModels returns the model names the Ollama server has available.
func (o *OllamaClient) ListModels(ctx context.Context) ([]string, error) {
	list, err := o.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	names := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		names = append(names, m.ID)
	}
	return names, nil
}
