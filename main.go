package main

import (
	"log"
	"net/http"

	"blogcms/config"
	"blogcms/database"
	"blogcms/handlers"
	"blogcms/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	supervisorHandler := handlers.NewSupervisorHandler(cfg)
	articleHandler := handlers.NewArticleHandler(cfg)
	keywordHandler := handlers.NewKeywordHandler(cfg)
	linkHandler := handlers.NewLinkHandler(cfg)
	imageHandler := handlers.NewImageHandler(cfg)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	// The one unauthenticated read: the active supervisor shown on a
	// published article. Only this exact GET bypasses the auth gate.
	router.Get("/supervisors/article/{articleID}", supervisorHandler.GetArticleSupervisor)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/auth/me", authHandler.Me)
		r.Post("/auth/logout", authHandler.Logout)
		r.Post("/auth/change-password", authHandler.ChangePassword)

		r.Get("/supervisors", supervisorHandler.List)
		r.Post("/supervisors", supervisorHandler.Create)
		r.Get("/supervisors/{id}", supervisorHandler.Get)
		r.Put("/supervisors/{id}", supervisorHandler.Update)
		r.Delete("/supervisors/{id}", supervisorHandler.Delete)
		r.Post("/supervisors/article/{articleID}", supervisorHandler.SetArticleSupervisor)
		r.Delete("/supervisors/article/{articleID}", supervisorHandler.UnsetArticleSupervisor)

		r.Get("/articles", articleHandler.List)
		r.Post("/articles", articleHandler.Create)
		r.Get("/articles/{id}", articleHandler.Get)
		r.Put("/articles/{id}", articleHandler.Update)
		r.Delete("/articles/{id}", articleHandler.Delete)

		r.Get("/keywords", keywordHandler.List)
		r.Post("/keywords", keywordHandler.Create)
		r.Get("/keywords/{id}", keywordHandler.Get)
		r.Put("/keywords/{id}", keywordHandler.Update)
		r.Delete("/keywords/{id}", keywordHandler.Delete)

		r.Get("/links", linkHandler.List)
		r.Post("/links", linkHandler.Create)
		r.Put("/links/{id}", linkHandler.Update)
		r.Delete("/links/{id}", linkHandler.Delete)

		r.Get("/images", imageHandler.List)
		r.Post("/images", imageHandler.Create)
		r.Delete("/images/{id}", imageHandler.Delete)
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
