package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/creatorhub/creatorhub-be/internal/api"
	"github.com/creatorhub/creatorhub-be/internal/auth"
	"github.com/creatorhub/creatorhub-be/internal/config"
	"github.com/creatorhub/creatorhub-be/internal/database"
	"github.com/creatorhub/creatorhub-be/internal/logger"
	"github.com/creatorhub/creatorhub-be/internal/monitoring"
	"github.com/creatorhub/creatorhub-be/internal/services"
	"github.com/creatorhub/creatorhub-be/internal/store"
	"github.com/creatorhub/creatorhub-be/internal/websocket"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.LogLevel)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up the auth components with explicit configuration
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Set up WebSocket Hub for the activity feed
	hub := websocket.NewHub()
	go hub.Run()

	// Set up stores and services
	creatorStore := store.NewCreatorStore(db)
	profileStore := store.NewProfileStore(db)
	eventStore := store.NewEventStore(db)

	eventService := services.NewEventService(eventStore, hub)
	creatorService := services.NewCreatorService(creatorStore, hasher, tokens, eventService)
	profileService := services.NewProfileService(profileStore, creatorStore, eventService)

	// Set up and run the background event pruner
	pruner, err := monitoring.NewPruner(eventService, cfg.EventPruneSchedule, time.Duration(cfg.EventRetentionDays)*24*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid event prune schedule")
	}
	go pruner.Run()

	// Set up router
	router := api.NewRouter(hub, tokens, creatorService, profileService, eventService, cfg.AllowedOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	pruner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
