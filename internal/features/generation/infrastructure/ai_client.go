package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

// ModelClient is a handle to a hosted generative model provider. It is
// built once at startup and shared by all requests.
type ModelClient interface {
	// Provider names the backing service, used for metrics and tracing.
	Provider() string

	// GenerateText returns the model's free-text answer to prompt.
	GenerateText(ctx context.Context, model, prompt string) (string, error)

	// GenerateJSON asks the model for a JSON document matching schema and
	// returns it undecoded.
	GenerateJSON(ctx context.Context, model string, schema domain.ObjectSchema, prompt string) (string, error)

	// Close releases the underlying connections.
	Close() error
}

// AIConfig holds configuration for model clients.
type AIConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// NewModelClient builds the client for cfg.Provider.
func NewModelClient(ctx context.Context, cfg AIConfig) (ModelClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("model API key not set")
	}
	switch strings.ToLower(cfg.Provider) {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, cfg)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported model provider %q", cfg.Provider)
	}
}

// stripCodeFence removes a markdown code block around a JSON answer.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	return strings.TrimSpace(s)
}
