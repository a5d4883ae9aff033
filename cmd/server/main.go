package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizzer-backend/internal/cache"
	"quizzer-backend/internal/config"
	"quizzer-backend/internal/database"
	"quizzer-backend/internal/engine"
	"quizzer-backend/internal/handlers"
	"quizzer-backend/internal/middleware"
	"quizzer-backend/internal/repository"
	"quizzer-backend/internal/router"
	"quizzer-backend/internal/services"
	"quizzer-backend/internal/worker"
)

func main() {
	log.Println("🚀 Starting Quizzer Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	quizRepo := repository.NewQuizRepo(pool)
	submissionRepo := repository.NewSubmissionRepo(pool)
	performanceRepo := repository.NewPerformanceRepo(pool)

	// ──── Step 5: Initialize Hint Provider ────
	hintService, err := services.NewHintService(cfg.GeminiAPIKey, time.Duration(cfg.HintTimeoutSeconds)*time.Second)
	if err != nil {
		log.Fatalf("✗ Hint service initialization failed: %v", err)
	}
	defer hintService.Close()
	log.Println("✓ Hint service initialized")

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	authService := services.NewAuthService(userRepo, jwtAuth)

	generationCache := cache.NewRedisCache(redisClients.Cache)
	assembler := engine.NewAssembler(generationCache, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	quizService := services.NewQuizService(
		quizRepo,
		submissionRepo,
		performanceRepo,
		userRepo,
		assembler,
		hintService,
		services.NewRedisReceiptQueue(redisClients.Queue),
	)

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	leaderboardHandler := handlers.NewLeaderboardHandler(submissionRepo)
	configHandler := handlers.NewConfigHandler(emailService)

	// ──── Step 6: Start Email Worker Pool ────
	workerPool := worker.NewPool(redisClients.Queue, emailService, cfg.EmailWorkers)
	workerPool.Start()
	log.Printf("✓ Email worker pool started (%d goroutines)", cfg.EmailWorkers)

	// ──── Step 7: Start HTTP Server ────
	apiLimiter := middleware.NewRateLimiter(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitMax, time.Minute)
	r := router.New(
		jwtAuth,
		authHandler,
		quizHandler,
		leaderboardHandler,
		configHandler,
		cfg.CORSOrigin,
		apiLimiter,
		authLimiter,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		workerPool.Stop()
		apiLimiter.Stop()
		authLimiter.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Quizzer Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
