package infrastructure

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

const (
	ProviderOpenAI = "openai"

	// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible endpoint, used when
	// no base URL is configured.
	GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
)

// openAIClient talks to any OpenAI-compatible chat completions endpoint.
type openAIClient struct {
	client *openai.Client
	cfg    AIConfig
}

// NewOpenAIClient creates a keyed OpenAI-compatible client.
func NewOpenAIClient(cfg AIConfig) (ModelClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("model API key not set")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = GeminiOpenAIBaseURL
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIClient{client: openai.NewClientWithConfig(clientCfg), cfg: cfg}, nil
}

func (c *openAIClient) Provider() string { return ProviderOpenAI }

func (c *openAIClient) request(model, prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
	}
}

func (c *openAIClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return c.complete(ctx, c.request(model, prompt))
}

func (c *openAIClient) GenerateJSON(ctx context.Context, model string, schema domain.ObjectSchema, prompt string) (string, error) {
	req := c.request(model, prompt)
	req.ResponseFormat = &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:   schema.Name,
			Schema: schema.Definition,
			Strict: true,
		},
	}
	text, err := c.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return stripCodeFence(text), nil
}

func (c *openAIClient) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in model response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty model response, finish reason %s", resp.Choices[0].FinishReason)
	}
	return content, nil
}

func (c *openAIClient) Close() error { return nil }
