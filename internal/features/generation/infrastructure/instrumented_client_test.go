package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-ai-hub/backend/internal/features/generation/domain"
	"marketing-ai-hub/backend/internal/observability/metrics"
)

type stubClient struct {
	text string
	err  error
}

func (s *stubClient) Provider() string { return "stub" }

func (s *stubClient) GenerateText(context.Context, string, string) (string, error) {
	return s.text, s.err
}

func (s *stubClient) GenerateJSON(context.Context, string, domain.ObjectSchema, string) (string, error) {
	return s.text, s.err
}

func (s *stubClient) Close() error { return nil }

func TestInstrument_RecordsOutcome(t *testing.T) {
	ok := metrics.LLMCallTotal.WithLabelValues("stub", "instrumented-ok", "ok")
	limited := metrics.LLMCallTotal.WithLabelValues("stub", "instrumented-quota", "rate_limited")
	failed := metrics.LLMCallTotal.WithLabelValues("stub", "instrumented-fail", "error")
	okBefore, limitedBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(limited), testutil.ToFloat64(failed)

	c := Instrument(&stubClient{text: "hi"})
	out, err := c.GenerateText(context.Background(), "instrumented-ok", "p")
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
	assert.Equal(t, "stub", c.Provider())

	c = Instrument(&stubClient{err: errors.New("quota exceeded")})
	_, err = c.GenerateJSON(context.Background(), "instrumented-quota", domain.PersonaSchema.ObjectSchema, "p")
	assert.EqualError(t, err, "quota exceeded")

	c = Instrument(&stubClient{err: errors.New("connection reset")})
	_, err = c.GenerateText(context.Background(), "instrumented-fail", "p")
	assert.Error(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, limitedBefore+1, testutil.ToFloat64(limited))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
	assert.NoError(t, c.Close())
}
