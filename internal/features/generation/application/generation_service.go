package application

import (
	"context"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

// GenerationService builds a prompt from the caller's fields and asks the
// remote model for either text or a schema-conforming object. Errors
// returned are *domain.ModelError.
type GenerationService interface {
	AnalyzeContent(ctx context.Context, f domain.Fields) (domain.ContentAnalysis, error)
	AnalyzeMarket(ctx context.Context, f domain.Fields) (domain.MarketAnalysis, error)
	GenerateCampaign(ctx context.Context, f domain.Fields) (domain.Campaign, error)
	GenerateContent(ctx context.Context, f domain.Fields) (string, error)
	GenerateIdeas(ctx context.Context, f domain.Fields) (domain.Ideas, error)
	GeneratePersona(ctx context.Context, f domain.Fields) (domain.Persona, error)
	PersonaAdFeedback(ctx context.Context, f domain.Fields) (string, error)
	PersonaChat(ctx context.Context, f domain.Fields) (string, error)
}

// generationService is the implementation of GenerationService. It holds
// no per-request state.
type generationService struct {
	models *ModelAccess
}

// NewGenerationService creates a new instance of generationService.
func NewGenerationService(models *ModelAccess) GenerationService {
	return &generationService{models: models}
}

func (s *generationService) defaultModel() string {
	return s.models.Routing().Default
}

// AnalyzeContent simulates a persona's reaction to marketing content.
func (s *generationService) AnalyzeContent(ctx context.Context, f domain.Fields) (domain.ContentAnalysis, error) {
	return GenerateObject(ctx, s.models, s.defaultModel(), domain.ContentAnalysisSchema, contentAnalysisPrompt(f)).Get()
}

// AnalyzeMarket produces a market analysis, falling back to the lower-tier
// model on quota failures.
func (s *generationService) AnalyzeMarket(ctx context.Context, f domain.Fields) (domain.MarketAnalysis, error) {
	return GenerateObjectWithFallback(ctx, s.models, domain.MarketAnalysisSchema, marketAnalysisPrompt(f)).Get()
}

// GenerateCampaign produces a campaign plan, falling back to the lower-tier
// model on quota failures.
func (s *generationService) GenerateCampaign(ctx context.Context, f domain.Fields) (domain.Campaign, error) {
	return GenerateObjectWithFallback(ctx, s.models, domain.CampaignSchema, campaignPrompt(f)).Get()
}

// GenerateContent writes free-form marketing copy.
func (s *generationService) GenerateContent(ctx context.Context, f domain.Fields) (string, error) {
	return s.models.GenerateTextWithFallback(ctx, contentPrompt(f)).Get()
}

// GenerateIdeas brainstorms quick wins, campaigns and content ideas.
func (s *generationService) GenerateIdeas(ctx context.Context, f domain.Fields) (domain.Ideas, error) {
	return GenerateObjectWithFallback(ctx, s.models, domain.IdeasSchema, ideasPrompt(f)).Get()
}

func (s *generationService) GeneratePersona(ctx context.Context, f domain.Fields) (domain.Persona, error) {
	return GenerateObject(ctx, s.models, s.defaultModel(), domain.PersonaSchema, personaPrompt(f)).Get()
}

// PersonaAdFeedback reviews an ad in the persona's own voice.
func (s *generationService) PersonaAdFeedback(ctx context.Context, f domain.Fields) (string, error) {
	return s.models.GenerateText(ctx, s.defaultModel(), adFeedbackPrompt(f)).Get()
}

// PersonaChat answers the next chat message in character. The client sends
// the full conversation history with every turn.
func (s *generationService) PersonaChat(ctx context.Context, f domain.Fields) (string, error) {
	return s.models.GenerateText(ctx, s.defaultModel(), chatPrompt(f)).Get()
}
