package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shoplens/backend/config"
	httpDelivery "github.com/shoplens/backend/internal/delivery/http"
	"github.com/shoplens/backend/internal/infrastructure/gemini"
	"github.com/shoplens/backend/internal/infrastructure/session"
	"github.com/shoplens/backend/internal/usecase"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("model", cfg.Gemini.Model).
		Msg("starting ShopLens backend v1.0.0")

	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("Gemini API key not configured, every analysis will fail")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(cfg *config.Config) error {
	// Create context that cancels on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize infrastructure dependencies
	geminiClient, err := gemini.NewClient(ctx, gemini.Options{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		BaseURL:           cfg.Gemini.BaseURL,
		RequestsPerMinute: cfg.RateLimit.Gemini,
	})
	if err != nil {
		return err
	}

	debug := cfg.Gemini.Debug || cfg.Server.Environment == "development"
	geminiClient.SetDebug(debug)

	panelStore := session.NewMemoryStore(session.DefaultCleanupInterval)
	defer panelStore.Close()

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(geminiClient, usecase.AnalysisServiceConfig{
		MaxProductNameLength: usecase.DefaultMaxProductNameLength,
		EnableDebugLogging:   debug,
	})
	panelService := usecase.NewPanelService(panelStore, analysisService, usecase.PanelServiceConfig{
		SessionTTL: cfg.Session.TTL,
	})

	handler := httpDelivery.NewHandler(analysisService, panelService, httpDelivery.HandlerOptions{
		ExposeErrorDetail: !cfg.IsProduction(),
	})
	router := httpDelivery.SetupRouter(cfg, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		// Let analyses started by form posts settle
		if err := panelService.Wait(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("analyses still running at shutdown")
		}
		return nil
	})

	return g.Wait()
}
