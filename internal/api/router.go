package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/creatorhub/creatorhub-be/internal/api/handlers"
	"github.com/creatorhub/creatorhub-be/internal/auth"
	"github.com/creatorhub/creatorhub-be/internal/services"
	"github.com/creatorhub/creatorhub-be/internal/websocket"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	hub *websocket.Hub,
	tokens *auth.TokenManager,
	creatorService services.CreatorServiceProvider,
	profileService services.ProfileServiceProvider,
	eventService services.EventServiceProvider,
	allowedOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", auth.TokenHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	creatorHandler := handlers.NewCreatorHandler(creatorService)
	authHandler := handlers.NewAuthHandler(creatorService)
	profileHandler := handlers.NewProfileHandler(profileService)
	eventHandler := handlers.NewEventHandler(eventService)
	feedHandler := handlers.NewFeedHandler(hub)

	gate := auth.Middleware(tokens)

	r.Route("/api", func(r chi.Router) {
		// Live activity feed
		r.Get("/ws/feed", feedHandler.Serve)

		r.Post("/creators", creatorHandler.Register)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/", authHandler.Login)
			r.With(gate).Get("/", authHandler.GetMe)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", profileHandler.List)
			r.Get("/creator/{creatorID}", profileHandler.GetByCreatorID)
			r.With(gate).Get("/me", profileHandler.GetMe)
			r.With(gate).Post("/", profileHandler.Upsert)
			r.With(gate).Delete("/profile", profileHandler.DeleteAccount)
		})

		r.With(gate).Get("/events", eventHandler.GetRecent)
	})

	return r
}
