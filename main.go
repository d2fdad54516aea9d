package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Arockiam07/College-Voting-System/internal/config"
	"github.com/Arockiam07/College-Voting-System/internal/container"
	"github.com/Arockiam07/College-Voting-System/internal/handler"
	"github.com/Arockiam07/College-Voting-System/internal/middleware"
	"github.com/Arockiam07/College-Voting-System/internal/repository"
	"github.com/Arockiam07/College-Voting-System/internal/service"
	"github.com/Arockiam07/College-Voting-System/pkg/database"
	"github.com/Arockiam07/College-Voting-System/pkg/logger"
	"github.com/Arockiam07/College-Voting-System/pkg/redis"
)

// Resources holds all resources that need cleanup
type Resources struct {
	db          *database.PostgresDB
	redisClient *redis.Client
	server      *http.Server
	log         *logger.Logger
	mu          sync.Mutex
	closed      bool
}

// Cleanup gracefully closes all resources
func (r *Resources) Cleanup(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errors []error

	r.log.Info("Starting graceful shutdown...")

	// Shutdown HTTP server first to stop accepting new requests
	if r.server != nil {
		r.log.Info("Shutting down HTTP server...")
		if err := r.server.Shutdown(ctx); err != nil {
			r.log.WithError(err).Error("Failed to shutdown HTTP server")
			errors = append(errors, fmt.Errorf("HTTP server shutdown: %w", err))
		} else {
			r.log.Info("HTTP server shutdown complete")
		}
	}

	// Close Redis connection with health check
	if r.redisClient != nil {
		r.log.Info("Closing Redis connection...")

		healthCtx, healthCancel := context.WithTimeout(ctx, 2*time.Second)
		if err := r.redisClient.Health(healthCtx); err != nil {
			r.log.WithError(err).Warn("Redis health check failed before closing")
		}
		healthCancel()

		if err := r.redisClient.Close(); err != nil {
			r.log.WithError(err).Error("Failed to close Redis connection")
			errors = append(errors, fmt.Errorf("Redis close: %w", err))
		} else {
			r.log.Info("Redis connection closed successfully")
		}
	}

	// Close database connection pool with health check
	if r.db != nil {
		r.log.Info("Closing database connection pool...")

		healthCtx, healthCancel := context.WithTimeout(ctx, 2*time.Second)
		if err := r.db.Health(healthCtx); err != nil {
			r.log.WithError(err).Warn("Database health check failed before closing")
		}
		healthCancel()

		r.db.Close()
		r.log.Info("Database connection pool closed successfully")
	}

	if len(errors) > 0 {
		r.log.WithField("error_count", len(errors)).Error("Cleanup completed with errors")
		return fmt.Errorf("cleanup completed with %d errors: %v", len(errors), errors)
	}

	r.log.Info("Graceful shutdown completed successfully")
	return nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
	}).Info("Starting campus-vote-api server")

	// Create dependency injection container
	container, err := container.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to create container")
	}

	// Initialize database connection
	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	redisClient := container.GetRedisClient()

	// Initialize repositories
	electionRepo := repository.NewElectionRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	ballotRepo := repository.NewBallotRepository(db)

	// Initialize services
	votingService := service.NewVotingService(electionRepo, candidateRepo, ballotRepo, redisClient, log.Logger)
	tallyService := service.NewTallyService(electionRepo, candidateRepo, ballotRepo, redisClient, log.Logger)
	electionService := service.NewElectionService(electionRepo, tallyService, redisClient, log.Logger)
	candidateService := service.NewCandidateService(candidateRepo, electionRepo, redisClient, log.Logger)
	dashboardService := service.NewDashboardService(electionRepo, candidateRepo, ballotRepo, tallyService, redisClient, log.Logger)

	// Setup router
	router := setupRouter(container, votingService, tallyService, electionService, candidateService, dashboardService, db)

	// Create HTTP server
	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB max header size
	}

	// Create resources manager for cleanup
	resources := &Resources{
		db:          db,
		redisClient: redisClient,
		server:      server,
		log:         log,
	}

	// Setup graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	// Setup cleanup function that will be called regardless of how the program exits
	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := resources.Cleanup(cleanupCtx); err != nil {
			log.WithError(err).Error("Cleanup completed with errors")
		}
	}()

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Server starting on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server error occurred")
			serverErrChan <- err
		}
	}()

	// Wait for interrupt signal or server error
	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrChan:
		log.WithError(err).Error("Server failed, initiating shutdown")
	}

	log.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := resources.Cleanup(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown completed with errors")
		os.Exit(1)
	}

	log.Info("Application shutdown complete")
}

// setupRouter configures and returns the HTTP router
func setupRouter(
	container *container.Container,
	votingService *service.VotingService,
	tallyService *service.TallyService,
	electionService *service.ElectionService,
	candidateService *service.CandidateService,
	dashboardService *service.DashboardService,
	db *database.PostgresDB,
) *chi.Mux {
	cfg := container.GetConfig()
	log := container.GetLogger()
	authService := container.GetAuthService()

	// Create router
	r := chi.NewRouter()

	// Setup CORS middleware
	corsConfig := &middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposedHeaders:   []string{"Content-Length", "ETag"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	// Setup middlewares
	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Create handlers
	healthHandler := handler.NewHealthHandler(db, container.GetRedisClient(), log)
	votingHandler := handler.NewVotingHandler(votingService)
	electionHandler := handler.NewElectionHandler(electionService, tallyService)
	candidateHandler := handler.NewCandidateHandler(candidateService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Setup routes

	// Health check (no auth required)
	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		// Public read endpoints (no auth required)
		r.Get("/elections", electionHandler.List)
		r.Get("/elections/{id}", electionHandler.Get)
		r.Get("/candidates", candidateHandler.List)

		// Authenticated endpoints (any signed-in user)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authService, log))

			r.Post("/votes", votingHandler.CastVote)
			r.Get("/votes/status", votingHandler.GetVoteStatus)
			r.Get("/votes/history", votingHandler.GetVoteHistory)

			r.Get("/elections/{id}/results", electionHandler.GetResults)
		})

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authService, log))
			r.Use(middleware.AdminOnly(log))

			r.Post("/elections", electionHandler.Create)
			r.Put("/elections/{id}", electionHandler.Update)
			r.Patch("/elections/{id}/status", electionHandler.UpdateStatus)
			r.Delete("/elections/{id}", electionHandler.Delete)

			r.Post("/candidates", candidateHandler.Create)
			r.Put("/candidates/{id}", candidateHandler.Update)
			r.Delete("/candidates/{id}", candidateHandler.Delete)

			r.Get("/dashboard/admin", dashboardHandler.GetAdminStats)
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":{"type":"not_found","message":"Endpoint not found"}}`))
	})

	log.Info("Router configured successfully")
	return r
}
