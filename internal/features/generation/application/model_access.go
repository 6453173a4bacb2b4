package application

import (
	"context"

	"marketing-ai-hub/backend/internal/features/generation/domain"
	"marketing-ai-hub/backend/internal/features/generation/infrastructure"
	"marketing-ai-hub/backend/internal/observability/logger"
	"marketing-ai-hub/backend/internal/observability/metrics"
)

// ModelRouting names the model identifiers used by each tier.
type ModelRouting struct {
	// Default serves calls made without fallback.
	Default string
	// Primary is tried first by the fallback helpers.
	Primary string
	// Fallback is the lower-tier model retried once after a quota failure.
	Fallback string
}

// ModelAccess wraps the shared model client. Every call returns a
// domain.Result; remote errors never escape as panics or bare errors.
type ModelAccess struct {
	client  infrastructure.ModelClient
	routing ModelRouting
}

// NewModelAccess creates the helper around a process-wide client.
func NewModelAccess(client infrastructure.ModelClient, routing ModelRouting) *ModelAccess {
	return &ModelAccess{client: client, routing: routing}
}

// Routing returns the configured model identifiers.
func (m *ModelAccess) Routing() ModelRouting {
	return m.routing
}

// GenerateText makes one free-text call against model.
func (m *ModelAccess) GenerateText(ctx context.Context, model, prompt string) domain.Result[string] {
	text, err := m.client.GenerateText(ctx, model, prompt)
	if err != nil {
		return domain.Failure[string](domain.NewModelError(model, err))
	}
	return domain.Success(text)
}

// GenerateTextWithFallback is GenerateText against the primary model,
// retried once against the fallback model when the failure mentions quota.
func (m *ModelAccess) GenerateTextWithFallback(ctx context.Context, prompt string) domain.Result[string] {
	return withFallback(ctx, m.routing, func(model string) domain.Result[string] {
		return m.GenerateText(ctx, model, prompt)
	})
}

// GenerateObject makes one structured call against model and decodes the
// answer with schema. Output that does not conform is a failure.
func GenerateObject[T any](ctx context.Context, m *ModelAccess, model string, schema domain.Schema[T], prompt string) domain.Result[T] {
	raw, err := m.client.GenerateJSON(ctx, model, schema.ObjectSchema, prompt)
	if err != nil {
		return domain.Failure[T](domain.NewModelError(model, err))
	}
	obj, err := schema.Decode(raw)
	if err != nil {
		return domain.Failure[T](domain.NewSchemaError(model, err))
	}
	return domain.Success(obj)
}

// GenerateObjectWithFallback is GenerateObject against the primary model,
// retried once against the fallback model when the failure mentions quota.
// A failed retry reports the retry's error.
func GenerateObjectWithFallback[T any](ctx context.Context, m *ModelAccess, schema domain.Schema[T], prompt string) domain.Result[T] {
	return withFallback(ctx, m.routing, func(model string) domain.Result[T] {
		return GenerateObject(ctx, m, model, schema, prompt)
	})
}

// withFallback runs attempt at most twice, sequentially. There is no
// backoff between the attempts.
func withFallback[T any](ctx context.Context, routing ModelRouting, attempt func(model string) domain.Result[T]) domain.Result[T] {
	res := attempt(routing.Primary)
	if res.OK() || !domain.MentionsQuota(res.Error()) {
		return res
	}

	logger.Warn(ctx, "quota exceeded on primary model, retrying with fallback",
		"primary_model", routing.Primary,
		"fallback_model", routing.Fallback,
		"error", res.Error(),
	)
	metrics.LLMFallbackTotal.WithLabelValues(routing.Primary, routing.Fallback).Inc()
	return attempt(routing.Fallback)
}
