// Package server assembles the HTTP router.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketing-ai-hub/backend/internal/config"
	configapp "marketing-ai-hub/backend/internal/features/config/application"
	confighttp "marketing-ai-hub/backend/internal/features/config/presentation/http"
	"marketing-ai-hub/backend/internal/features/generation/application"
	generationhttp "marketing-ai-hub/backend/internal/features/generation/presentation/http"
	healthhttp "marketing-ai-hub/backend/internal/features/health/presentation/http"
	"marketing-ai-hub/backend/internal/middleware"
)

// Router owns the gin engine and its routes.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(cfg *config.Config, generationService application.GenerationService) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{engine: gin.New(), cfg: cfg}
	r.setupMiddleware()
	r.setupRoutes(generationService)
	return r
}

// Engine returns the gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupMiddleware() {
	obs := r.cfg.Observability

	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	if obs.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}
	r.engine.Use(middleware.AccessLog())
	r.engine.Use(middleware.CORS(r.cfg.Security.CORS.AllowedOrigins))
	if obs.Metrics.Enabled {
		r.engine.Use(middleware.Metrics(obs.Metrics.Path))
	}
}

func (r *Router) setupRoutes(generationService application.GenerationService) {
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	api := r.engine.Group("/api")
	{
		api.GET("/health", healthhttp.NewHealthHandler().GetHealthHandler)
		api.GET("/config", confighttp.NewAppConfigHandler(configapp.NewConfigService(r.cfg)).GetAppConfigHandler)
		generationhttp.NewGenerationHandler(generationService).RegisterRoutes(api)
	}
}
