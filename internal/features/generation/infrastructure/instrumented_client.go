package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"marketing-ai-hub/backend/internal/features/generation/domain"
	"marketing-ai-hub/backend/internal/observability/logger"
	"marketing-ai-hub/backend/internal/observability/metrics"
	"marketing-ai-hub/backend/internal/observability/tracer"
)

// instrumentedClient records a span, metrics and a debug log line for
// every remote call of the wrapped client.
type instrumentedClient struct {
	next ModelClient
}

// Instrument wraps c with tracing and Prometheus metrics.
func Instrument(c ModelClient) ModelClient {
	return &instrumentedClient{next: c}
}

func (c *instrumentedClient) Provider() string { return c.next.Provider() }

func (c *instrumentedClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return c.observe(ctx, "llm.generate_text", model, prompt, func(ctx context.Context) (string, error) {
		return c.next.GenerateText(ctx, model, prompt)
	})
}

func (c *instrumentedClient) GenerateJSON(ctx context.Context, model string, schema domain.ObjectSchema, prompt string) (string, error) {
	return c.observe(ctx, "llm.generate_json", model, prompt, func(ctx context.Context) (string, error) {
		return c.next.GenerateJSON(ctx, model, schema, prompt)
	})
}

func (c *instrumentedClient) Close() error { return c.next.Close() }

func (c *instrumentedClient) observe(ctx context.Context, op, model, prompt string, call func(context.Context) (string, error)) (string, error) {
	provider := c.next.Provider()
	ctx, span := tracer.Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", model),
		attribute.Int("llm.prompt_chars", len(prompt)),
	)

	start := time.Now()
	out, err := call(ctx)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		if domain.Classify(err.Error()) == domain.ErrorKindRateLimited {
			status = "rate_limited"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	metrics.LLMCallTotal.WithLabelValues(provider, model, status).Inc()
	metrics.LLMCallDuration.WithLabelValues(provider, model).Observe(elapsed.Seconds())
	logger.Debug(ctx, "model call finished",
		"provider", provider,
		"model", model,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
	)
	return out, err
}
