package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/probable-spork/internal/config"
	server "github.com/mauv0809/probable-spork/internal/http"
	"github.com/mauv0809/probable-spork/internal/matchmaking"
	"github.com/mauv0809/probable-spork/internal/metrics"
	"github.com/mauv0809/probable-spork/internal/pubsub"
	"github.com/mauv0809/probable-spork/internal/rating"
	"github.com/mauv0809/probable-spork/internal/session"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var pubsubClient pubsub.PubSubClient
	if cfg.ProjectID != "" {
		pubsubClient = pubsub.New(cfg.ProjectID)
	} else {
		// Without a project we still want the pairing pipeline to run locally.
		log.Warn("GCP_PROJECT not set, pairing events will not be published")
		pubsubClient = pubsub.NewMock("local")
	}

	ratings := rating.NewStaticProvider(cfg.Rating.DefaultRating)
	matchmaker := matchmaking.New(
		cfg.Matchmaking,
		matchmaking.NewBotCatalog(),
		matchmaking.NewFirstFitPolicy(),
		session.NewUUIDAllocator(),
		metricsSvc,
		pubsubClient,
	)

	scheduler := matchmaking.NewScheduler(matchmaker, cfg.Matchmaking.TickInterval, metricsSvc)
	scheduler.Start()

	s := server.NewServer(
		matchmaker,
		ratings,
		pubsubClient,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Stop pairing before the listener so no match is minted mid-shutdown.
		scheduler.Stop()

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
