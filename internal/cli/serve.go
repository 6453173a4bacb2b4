package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"marketing-ai-hub/backend/internal/config"
	"marketing-ai-hub/backend/internal/features/generation/application"
	"marketing-ai-hub/backend/internal/features/generation/infrastructure"
	"marketing-ai-hub/backend/internal/observability/logger"
	"marketing-ai-hub/backend/internal/observability/tracer"
	"marketing-ai-hub/backend/internal/server"
)

// Defaults used until the configuration has been read.
const (
	bootLogLevel  = "info"
	bootLogFormat = "json"
)

// logOutput receives every log line written by serve.
var logOutput io.Writer = os.Stdout

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, path)
		},
	}
}

// loadConfig reads .env, then the config file and environment, and
// rejects a configuration the server cannot start with.
func loadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug(context.Background(), "no .env file found, using environment variables")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, configPath string) error {
	logger.InitWithWriter(logOutput, bootLogLevel, bootLogFormat)

	cfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error(ctx, "failed to load configuration", err)
		return err
	}

	obs := cfg.Observability
	logger.InitWithWriter(logOutput, obs.Logging.Level, obs.Logging.Format)
	logger.Info(ctx, "starting marketing-ai-hub",
		"version", Version,
		"env", cfg.App.Env,
		"provider", cfg.LLM.Provider,
	)

	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    obs.Tracing.Endpoint,
		SampleRate:  obs.Tracing.SampleRate,
		Enabled:     obs.Tracing.Enabled,
	})
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error(ctx, "failed to shut down tracer", err)
		}
	}()

	client, err := infrastructure.NewModelClient(ctx, infrastructure.AIConfig{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("create model client: %w", err)
	}
	defer client.Close()

	models := application.NewModelAccess(infrastructure.Instrument(client), application.ModelRouting{
		Default:  cfg.LLM.DefaultModel,
		Primary:  cfg.LLM.PrimaryModel,
		Fallback: cfg.LLM.FallbackModel,
	})
	router := server.NewRouter(cfg, application.NewGenerationService(models))

	httpCfg := cfg.Server.HTTP
	srv := &http.Server{
		Addr:         httpCfg.Addr(),
		Handler:      router.Engine(),
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
		IdleTimeout:  httpCfg.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http server starting", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down server", "timeout", httpCfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "graceful shutdown did not complete", err)
		return srv.Close()
	}
	logger.Info(context.Background(), "server exited")
	return nil
}
