package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/cache"
	"github.com/skillbridge-bd/institute-backend/internal/config"
	"github.com/skillbridge-bd/institute-backend/internal/database"
	"github.com/skillbridge-bd/institute-backend/internal/handler"
	"github.com/skillbridge-bd/institute-backend/internal/logger"
	"github.com/skillbridge-bd/institute-backend/internal/metrics"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
	"github.com/skillbridge-bd/institute-backend/internal/router"
	"github.com/skillbridge-bd/institute-backend/internal/service"
	"github.com/skillbridge-bd/institute-backend/internal/storage"
	"github.com/skillbridge-bd/institute-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("storage", cfg.Storage.Provider).
		Msg("Starting institute backend")

	if cfg.JWTSecret == "dev_jwt_secret" && cfg.GinMode == "release" {
		log.Warn().Msg("JWT_SECRET is the development default")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()
	if cfg.MetricsEnabled {
		metrics.Register()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, list cache disabled")
		rdb = nil
	}
	var listCache cache.ListCache = cache.Nop{}
	if rdb != nil {
		defer rdb.Close()
		listCache = cache.NewRedisListCache(rdb, cfg.ListCacheTTL)
	}

	// ─── Initialize Storage Provider ───────────────────────────────────
	uploader, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure storage provider")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	certificateRepo := repository.NewCertificateRepository(pool)
	seminarRepo := repository.NewSeminarRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	credentialService := service.NewCredentialService(adminRepo, authService, cfg, log)
	mediaService := service.NewMediaService(uploader, cfg.MaxUploadBytes, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, mediaService, log)
	messageService := service.NewMessageService(messageRepo)
	resultService := service.NewResultService(resultRepo, listCache, log)
	certificateService := service.NewCertificateService(certificateRepo, mediaService, listCache, log)
	seminarService := service.NewSeminarService(seminarRepo, listCache, log)

	// Bootstrap eagerly so the warning about default credentials shows at
	// startup. Login still bootstraps on demand.
	if err := credentialService.EnsureDefaultIdentity(ctx); err != nil {
		log.Warn().Err(err).Msg("Default admin bootstrap failed")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(credentialService, authService, cfg.CookieSecure),
		Credential:  handler.NewCredentialHandler(credentialService, cfg.CookieSecure),
		Enrollment:  handler.NewEnrollmentHandler(enrollmentService),
		Message:     handler.NewMessageHandler(messageService),
		Result:      handler.NewResultHandler(resultService),
		Certificate: handler.NewCertificateHandler(certificateService),
		Seminar:     handler.NewSeminarHandler(seminarService),
		Health:      handler.NewHealthHandler(pool, rdb, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(credentialService, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// Stop accepting new HTTP requests (5s timeout). The pool and Redis are
	// closed by the deferred calls above.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
