package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/resumate-app/resumate/internal/analyzer"
	"github.com/resumate-app/resumate/internal/api"
	"github.com/resumate-app/resumate/internal/config"
	"github.com/resumate-app/resumate/internal/phrase"
	"github.com/resumate-app/resumate/internal/pipeline"
	"github.com/resumate-app/resumate/internal/taxonomy"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The taxonomy is loaded once and injected; everything downstream
	// treats it as read-only.
	svc := analyzer.NewService(taxonomy.Default(), phrase.DefaultPhrases(), cfg.MaxUploadBytes, cfg.StatsWindow, log)

	orch := pipeline.NewOrchestrator(cfg, svc, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, svc, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting resumate", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
