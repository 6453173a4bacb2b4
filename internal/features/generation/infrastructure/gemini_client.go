package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/api/option"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

const ProviderGemini = "gemini"

// geminiClient talks to the Gemini API through the native SDK.
type geminiClient struct {
	client *genai.Client
	cfg    AIConfig
}

// NewGeminiClient creates a keyed Gemini client.
func NewGeminiClient(ctx context.Context, cfg AIConfig) (ModelClient, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiClient{client: client, cfg: cfg}, nil
}

func (c *geminiClient) Provider() string { return ProviderGemini }

func (c *geminiClient) model(name string) *genai.GenerativeModel {
	m := c.client.GenerativeModel(name)
	if c.cfg.Temperature > 0 {
		m.SetTemperature(float32(c.cfg.Temperature))
	}
	if c.cfg.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(c.cfg.MaxTokens))
	}
	return m
}

func (c *geminiClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.model(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return responseText(resp)
}

func (c *geminiClient) GenerateJSON(ctx context.Context, model string, schema domain.ObjectSchema, prompt string) (string, error) {
	m := c.model(model)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = toGenaiSchema(schema)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return stripCodeFence(text), nil
}

func (c *geminiClient) Close() error {
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in model response")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", fmt.Errorf("empty candidate, finish reason %s", cand.FinishReason)
	}
	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text parts in model response")
	}
	return b.String(), nil
}

// toGenaiSchema converts a JSON schema into Gemini's response schema.
// Gemini has no $ref support, so referenced definitions are inlined.
// additionalProperties has no Gemini equivalent and is dropped.
func toGenaiSchema(schema domain.ObjectSchema) *genai.Schema {
	return convertDefinition(schema, schema.Definition)
}

func convertDefinition(schema domain.ObjectSchema, def *jsonschema.Definition) *genai.Schema {
	if def == nil {
		return nil
	}
	description := def.Description
	def = schema.Resolve(def)
	if def.Description != "" {
		description = def.Description
	}
	s := &genai.Schema{
		Type:        genaiType(def.Type),
		Description: description,
		Required:    def.Required,
	}
	if len(def.Enum) > 0 {
		s.Format = "enum"
		s.Enum = def.Enum
	}
	if def.Items != nil {
		s.Items = convertDefinition(schema, def.Items)
	}
	if len(def.Properties) > 0 {
		s.Properties = make(map[string]*genai.Schema, len(def.Properties))
		for name, prop := range def.Properties {
			s.Properties[name] = convertDefinition(schema, &prop)
		}
	}
	return s
}

func genaiType(t jsonschema.DataType) genai.Type {
	switch t {
	case jsonschema.Object:
		return genai.TypeObject
	case jsonschema.Array:
		return genai.TypeArray
	case jsonschema.Integer:
		return genai.TypeInteger
	case jsonschema.Number:
		return genai.TypeNumber
	case jsonschema.Boolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
