package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"reelstreak/internal/archive"
	"reelstreak/internal/config"
	"reelstreak/internal/database"
	"reelstreak/internal/handlers"
	"reelstreak/internal/repository"
	"reelstreak/internal/security"
	"reelstreak/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load the puzzle archives
	archives, err := archive.Load(cfg.ArchivePath)
	if err != nil {
		log.Fatalf("Failed to load puzzle archives: %v", err)
	}

	log.Printf("Archives loaded: %d roles, %d degrees, %d rated movies",
		len(archives.Roles), len(archives.Degrees), len(archives.Ratings))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	resultRepo := repository.NewResultRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.SessionDuration, cfg.AuthJWTSecret)
	gameService := service.NewGameService(archives, resultRepo)
	metadataService := service.NewMetadataService(cfg.TMDBAPIKey, cfg.TMDBBaseURL)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	feedbackService := service.NewFeedbackService(feedbackRepo, emailService, cfg.FeedbackToEmail)
	backupService := service.NewBackupService(db)

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService, emailService, oauthProviders, cfg.AppBaseURL)
	gameHandler := handlers.NewGameHandler(gameService, metadataService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, security.NewRateLimiter(5, time.Minute))
	adminHandler := handlers.NewAdminHandler(backupService)

	// Setup routes
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/register", authHandler.Register)
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/auth/providers", authHandler.Providers)
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Daily puzzles
	mux.HandleFunc("GET /api/roles/daily", middleware.OptionalAuth(gameHandler.DailyRoles))
	mux.HandleFunc("GET /api/roles/bonus", middleware.OptionalAuth(gameHandler.BonusRoles))
	mux.HandleFunc("GET /api/degrees/daily", middleware.OptionalAuth(gameHandler.DailyDegrees))
	mux.HandleFunc("GET /api/degrees/bonus", middleware.OptionalAuth(gameHandler.BonusDegrees))
	mux.HandleFunc("GET /api/thumbs/round", middleware.OptionalAuth(gameHandler.ThumbsRound))

	// Results and stats
	mux.HandleFunc("POST /api/results", middleware.RequireAuth(gameHandler.SubmitResult))
	mux.HandleFunc("GET /api/stats", middleware.RequireAuth(gameHandler.Stats))

	// Feedback
	mux.HandleFunc("POST /api/feedback", middleware.OptionalAuth(feedbackHandler.Submit))

	// Admin
	mux.HandleFunc("GET /api/admin/feedback", middleware.RequireAdmin(feedbackHandler.Recent))
	mux.HandleFunc("GET /api/admin/backup", middleware.RequireAdmin(adminHandler.ExportBackup))
	mux.HandleFunc("POST /api/admin/backup", middleware.RequireAdmin(adminHandler.ImportBackup))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Failed to cleanup expired sessions: %v", err)
		}
	}
}
