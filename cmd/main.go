package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/eventsphere/backend/docs"
	authmw "github.com/eventsphere/backend/internal/auth/middleware"
	"github.com/eventsphere/backend/internal/auth/service"
	"github.com/eventsphere/backend/internal/config"
	"github.com/eventsphere/backend/internal/database"
	"github.com/eventsphere/backend/internal/handlers"
	"github.com/eventsphere/backend/internal/logger"
	"github.com/eventsphere/backend/internal/middleware"
	"github.com/eventsphere/backend/internal/models"
	"github.com/eventsphere/backend/internal/repositories"
	"github.com/eventsphere/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// maxRequestBodyBytes limits every request body
const maxRequestBodyBytes = 1 << 20

// @title EventSphere API
// @version 1.0
// @description Accounts, login and event registrations

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting EventSphere service")

	// Connect to database
	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.Migrate(db, cfg.MigrationsPath); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      newRouter(cfg, db, appLogger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

// newRouter wires repositories, services and handlers onto a chi router
func newRouter(cfg *config.Config, db *sql.DB, appLogger *zap.Logger) http.Handler {
	// Initialize JWT token generator
	tokenGenerator := service.NewTokenGenerator(
		cfg.JWT.Secret,
		cfg.JWT.TokenExpiry,
		service.WithClockSkew(cfg.JWT.ClockSkew),
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, appLogger)
	registrationRepo := repositories.NewRegistrationRepository(db, appLogger)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenGenerator, appLogger, cfg.BcryptCost)
	registrationService := services.NewRegistrationService(registrationRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, appLogger)
	healthHandler := handlers.NewHealthHandler(db, appLogger)

	// Initialize auth middleware
	requireAuth := authmw.RequireAuth(tokenGenerator, appLogger)
	requireStaff := authmw.RequireRoles(tokenGenerator, appLogger, models.RoleAdmin, models.RoleFaculty)
	authLimiter := rateLimitByIP(cfg.RateLimit.AuthRequestsPerMinute)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(appLogger))
	r.Use(middleware.RecoveryMiddleware(appLogger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(rateLimitByIP(cfg.RateLimit.RequestsPerMinute))
	r.Use(middleware.RequestSizeLimitMiddleware(maxRequestBodyBytes))

	healthHandler.RegisterRoutes(r)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authLimiter)
		registrationHandler.RegisterRoutes(r, requireAuth, requireStaff)
	})

	return r
}

// rateLimitByIP allows requestsPerMinute per client IP and answers the rest with a JSON 429
func rateLimitByIP(requestsPerMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(requestsPerMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(middleware.RateLimitExceeded),
	)
}
