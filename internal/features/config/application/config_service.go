package application

import (
	"marketing-ai-hub/backend/internal/config"
	"marketing-ai-hub/backend/internal/features/config/domain"
)

// ConfigService defines the interface for reading the public configuration.
type ConfigService interface {
	AppConfig() *domain.AppConfig
}

// configService is the implementation of ConfigService.
type configService struct {
	cfg *config.Config
}

// NewConfigService creates a new instance of configService.
func NewConfigService(cfg *config.Config) ConfigService {
	return &configService{cfg: cfg}
}

// AppConfig builds the redacted view from the loaded configuration.
func (s *configService) AppConfig() *domain.AppConfig {
	llm := s.cfg.LLM
	return &domain.AppConfig{
		Service:     s.cfg.App.Name,
		Environment: s.cfg.App.Env,
		Provider:    llm.Provider,
		Models: domain.ModelRoute{
			Default:  llm.DefaultModel,
			Primary:  llm.PrimaryModel,
			Fallback: llm.FallbackModel,
		},
		ModelParams: domain.ModelParams{
			Temperature: llm.Temperature,
			MaxTokens:   llm.MaxTokens,
		},
	}
}
