package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

// stubService returns canned values; err, when set, fails every call.
type stubService struct {
	err  error
	seen domain.Fields
}

func (s *stubService) record(f domain.Fields) error {
	s.seen = f
	return s.err
}

func (s *stubService) AnalyzeContent(_ context.Context, f domain.Fields) (domain.ContentAnalysis, error) {
	return domain.ContentAnalysis{EmotionalSummary: "curious", ConversionLikelihood: 60}, s.record(f)
}

func (s *stubService) AnalyzeMarket(_ context.Context, f domain.Fields) (domain.MarketAnalysis, error) {
	return domain.MarketAnalysis{Overview: "growing"}, s.record(f)
}

func (s *stubService) GenerateCampaign(_ context.Context, f domain.Fields) (domain.Campaign, error) {
	return domain.Campaign{Name: "Summer Splash"}, s.record(f)
}

func (s *stubService) GenerateContent(_ context.Context, f domain.Fields) (string, error) {
	return "Hot deals for hot days!", s.record(f)
}

func (s *stubService) GenerateIdeas(_ context.Context, f domain.Fields) (domain.Ideas, error) {
	return domain.Ideas{ImplementationTips: []string{"start small"}}, s.record(f)
}

func (s *stubService) GeneratePersona(_ context.Context, f domain.Fields) (domain.Persona, error) {
	return domain.Persona{Name: "Maya"}, s.record(f)
}

func (s *stubService) PersonaAdFeedback(_ context.Context, f domain.Fields) (string, error) {
	return "I like it", s.record(f)
}

func (s *stubService) PersonaChat(_ context.Context, f domain.Fields) (string, error) {
	return "Hello!", s.record(f)
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewGenerationHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGenerationHandler_GenerateContent(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc)

	w := post(r, "/api/generate-content",
		`{"contentType":"social-media","topic":"summer sale","tone":"exciting","audience":"young professionals","additionalInfo":""}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hot deals for hot days!", decode(t, w)["content"])
	assert.Equal(t, "summer sale", svc.seen["topic"])
}

func TestGenerationHandler_ResponseKeys(t *testing.T) {
	cases := []struct {
		path string
		key  string
	}{
		{"/api/analyze-content", "analysis"},
		{"/api/analyze-market", "analysis"},
		{"/api/generate-campaign", "campaign"},
		{"/api/generate-content", "content"},
		{"/api/generate-ideas", "ideas"},
		{"/api/generate-persona", "persona"},
		{"/api/persona-ad-feedback", "feedback"},
		{"/api/persona-chat", "response"},
	}
	r := newTestRouter(&stubService{})

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := post(r, tc.path, `{}`)
			require.Equal(t, http.StatusOK, w.Code)
			body := decode(t, w)
			assert.Len(t, body, 1)
			assert.Contains(t, body, tc.key)
		})
	}
}

func TestGenerationHandler_StructuredBody(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := post(r, "/api/analyze-content", `{"marketingContent":"Buy now"}`)

	require.Equal(t, http.StatusOK, w.Code)
	analysis, ok := decode(t, w)["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "curious", analysis["emotionalSummary"])
	assert.EqualValues(t, 60, analysis["conversionLikelihood"])
}

func TestGenerationHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		err     error
		status  int
		message string
	}{
		{
			name:    "quota on structured endpoint",
			path:    "/api/generate-campaign",
			err:     domain.NewModelError("pro", errors.New("You exceeded your current quota")),
			status:  http.StatusTooManyRequests,
			message: "API quota exceeded. Please try again later or upgrade your plan.",
		},
		{
			name:    "rate limit on chat",
			path:    "/api/persona-chat",
			err:     domain.NewModelError("flash", errors.New("Rate limit reached")),
			status:  http.StatusTooManyRequests,
			message: "API quota exceeded. Please try again later.",
		},
		{
			name:    "rate limit on feedback",
			path:    "/api/persona-ad-feedback",
			err:     domain.NewModelError("flash", errors.New("429 RATE exceeded")),
			status:  http.StatusTooManyRequests,
			message: "API quota exceeded. Please try again later.",
		},
		{
			name:    "other failure",
			path:    "/api/generate-persona",
			err:     domain.NewModelError("flash", errors.New("connection refused")),
			status:  http.StatusInternalServerError,
			message: "Failed to generate persona",
		},
		{
			name:    "schema failure",
			path:    "/api/analyze-market",
			err:     domain.NewSchemaError("pro", errors.New("missing field")),
			status:  http.StatusInternalServerError,
			message: "Failed to analyze market",
		},
		{
			name:    "plain error classified by message",
			path:    "/api/generate-ideas",
			err:     errors.New("quota"),
			status:  http.StatusTooManyRequests,
			message: "API quota exceeded. Please try again later or upgrade your plan.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubService{err: tc.err})

			w := post(r, tc.path, `{}`)

			require.Equal(t, tc.status, w.Code)
			assert.Equal(t, map[string]any{"error": tc.message}, decode(t, w))
		})
	}
}

func TestGenerationHandler_BodyHandling(t *testing.T) {
	t.Run("non-object body", func(t *testing.T) {
		svc := &stubService{}
		w := post(newTestRouter(svc), "/api/generate-content", `["not", "an", "object"]`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to generate content", decode(t, w)["error"])
		assert.Nil(t, svc.seen)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := post(newTestRouter(&stubService{}), "/api/generate-ideas", `{"business":`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to generate ideas", decode(t, w)["error"])
	})

	t.Run("empty body", func(t *testing.T) {
		w := post(newTestRouter(&stubService{}), "/api/persona-chat", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello!", decode(t, w)["response"])
	})
}
