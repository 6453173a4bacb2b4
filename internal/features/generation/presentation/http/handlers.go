package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketing-ai-hub/backend/internal/features/generation/application"
	"marketing-ai-hub/backend/internal/features/generation/domain"
	"marketing-ai-hub/backend/internal/observability/logger"
	"marketing-ai-hub/backend/internal/observability/metrics"
)

const (
	quotaMessage      = "API quota exceeded. Please try again later or upgrade your plan."
	quotaMessageShort = "API quota exceeded. Please try again later."
)

// endpoint describes how one generation route answers.
type endpoint struct {
	name        string
	responseKey string
	failure     string
	quota       string
}

var (
	analyzeContentEndpoint   = endpoint{"analyze-content", "analysis", "Failed to analyze content", quotaMessage}
	analyzeMarketEndpoint    = endpoint{"analyze-market", "analysis", "Failed to analyze market", quotaMessage}
	generateCampaignEndpoint = endpoint{"generate-campaign", "campaign", "Failed to generate campaign", quotaMessage}
	generateContentEndpoint  = endpoint{"generate-content", "content", "Failed to generate content", quotaMessage}
	generateIdeasEndpoint    = endpoint{"generate-ideas", "ideas", "Failed to generate ideas", quotaMessage}
	generatePersonaEndpoint  = endpoint{"generate-persona", "persona", "Failed to generate persona", quotaMessage}
	adFeedbackEndpoint       = endpoint{"persona-ad-feedback", "feedback", "Failed to generate feedback", quotaMessageShort}
	personaChatEndpoint      = endpoint{"persona-chat", "response", "Failed to generate response", quotaMessageShort}
)

// GenerationHandler exposes the generation service over HTTP.
type GenerationHandler struct {
	generationService application.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService application.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// RegisterRoutes mounts every generation endpoint under rg.
func (h *GenerationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-content", h.AnalyzeContentHandler)
	rg.POST("/analyze-market", h.AnalyzeMarketHandler)
	rg.POST("/generate-campaign", h.GenerateCampaignHandler)
	rg.POST("/generate-content", h.GenerateContentHandler)
	rg.POST("/generate-ideas", h.GenerateIdeasHandler)
	rg.POST("/generate-persona", h.GeneratePersonaHandler)
	rg.POST("/persona-ad-feedback", h.PersonaAdFeedbackHandler)
	rg.POST("/persona-chat", h.PersonaChatHandler)
}

// AnalyzeContentHandler handles persona content analysis requests.
func (h *GenerationHandler) AnalyzeContentHandler(c *gin.Context) {
	respond(c, analyzeContentEndpoint, h.generationService.AnalyzeContent)
}

// AnalyzeMarketHandler handles market analysis requests.
func (h *GenerationHandler) AnalyzeMarketHandler(c *gin.Context) {
	respond(c, analyzeMarketEndpoint, h.generationService.AnalyzeMarket)
}

// GenerateCampaignHandler handles campaign strategy requests.
func (h *GenerationHandler) GenerateCampaignHandler(c *gin.Context) {
	respond(c, generateCampaignEndpoint, h.generationService.GenerateCampaign)
}

// GenerateContentHandler handles marketing copy requests.
func (h *GenerationHandler) GenerateContentHandler(c *gin.Context) {
	respond(c, generateContentEndpoint, h.generationService.GenerateContent)
}

// GenerateIdeasHandler handles idea brainstorming requests.
func (h *GenerationHandler) GenerateIdeasHandler(c *gin.Context) {
	respond(c, generateIdeasEndpoint, h.generationService.GenerateIdeas)
}

// GeneratePersonaHandler handles persona generation requests.
func (h *GenerationHandler) GeneratePersonaHandler(c *gin.Context) {
	respond(c, generatePersonaEndpoint, h.generationService.GeneratePersona)
}

// PersonaAdFeedbackHandler handles in-character ad review requests.
func (h *GenerationHandler) PersonaAdFeedbackHandler(c *gin.Context) {
	respond(c, adFeedbackEndpoint, h.generationService.PersonaAdFeedback)
}

// PersonaChatHandler handles one turn of a persona conversation.
func (h *GenerationHandler) PersonaChatHandler(c *gin.Context) {
	respond(c, personaChatEndpoint, h.generationService.PersonaChat)
}

func respond[T any](c *gin.Context, ep endpoint, call func(context.Context, domain.Fields) (T, error)) {
	ctx := c.Request.Context()

	var fields domain.Fields
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		logger.Error(ctx, "invalid request body", err, "endpoint", ep.name)
		metrics.GenerationTotal.WithLabelValues(ep.name, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": ep.failure})
		return
	}

	out, err := call(ctx, fields)
	if err != nil {
		kind := domain.KindOf(err)
		logger.Error(ctx, "generation failed", err, "endpoint", ep.name, "kind", kind.String())
		if kind == domain.ErrorKindRateLimited {
			metrics.GenerationTotal.WithLabelValues(ep.name, "rate_limited").Inc()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": ep.quota})
			return
		}
		metrics.GenerationTotal.WithLabelValues(ep.name, "error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": ep.failure})
		return
	}

	metrics.GenerationTotal.WithLabelValues(ep.name, "ok").Inc()
	c.JSON(http.StatusOK, gin.H{ep.responseKey: out})
}
