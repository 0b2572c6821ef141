package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/config"
	"github.com/skillbridge-bd/institute-backend/internal/handler"
	"github.com/skillbridge-bd/institute-backend/internal/middleware"
	"github.com/skillbridge-bd/institute-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth        *handler.AuthHandler
	Credential  *handler.CredentialHandler
	Enrollment  *handler.EnrollmentHandler
	Message     *handler.MessageHandler
	Result      *handler.ResultHandler
	Certificate *handler.CertificateHandler
	Seminar     *handler.SeminarHandler
	// Health is optional; without it /health answers without pinging anything.
	Health *handler.HealthHandler
}

// SetupRouter configures the public and admin routes. Reads are public;
// every write except the public enrollment and contact forms goes through
// RequireAdmin.
func SetupRouter(
	auth middleware.Authenticator,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Request ID first so the logger can read it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ─── CORS ──────────────────────────────────────────────────────────
	// The admin UI relies on the token cookie, so credentials are allowed
	// whenever origins are pinned.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli())
	router.MaxMultipartMemory = 2 * cfg.MaxUploadBytes

	// Images stored by the local provider, cached for a year.
	if cfg.Storage.Provider == config.StorageLocal {
		uploadsGroup := router.Group("/uploads")
		uploadsGroup.Use(middleware.ImmutableCache(365 * 24 * time.Hour))
		{
			uploadsGroup.Static("/", cfg.Storage.UploadDir)
		}
	}

	if handlers.Health != nil {
		router.GET("/health", handlers.Health.Health)
	} else {
		router.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{"status": "ok"})
		})
	}

	requireAdmin := middleware.RequireAdmin(auth)
	api := router.Group("/api")

	// ─── 1. Auth ───────────────────────────────────────────────────────
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", handlers.Auth.Login)
		authGroup.POST("/logout", handlers.Auth.Logout)
		authGroup.GET("/me", requireAdmin, handlers.Auth.Me)
	}
	api.PUT("/credentials", requireAdmin, handlers.Credential.Update)

	// ─── 2. Public forms ───────────────────────────────────────────────
	enrollments := api.Group("/enrollments")
	{
		enrollments.GET("", handlers.Enrollment.List)
		enrollments.POST("", handlers.Enrollment.Create)
		enrollments.DELETE("", requireAdmin, handlers.Enrollment.Delete)
	}

	messages := api.Group("/messages")
	{
		messages.GET("", handlers.Message.List)
		messages.POST("", handlers.Message.Create)
		messages.DELETE("", requireAdmin, handlers.Message.Delete)
	}

	// ─── 3. Admin managed, publicly readable ───────────────────────────
	results := api.Group("/results")
	{
		results.GET("", handlers.Result.List)
		results.POST("", requireAdmin, handlers.Result.Create)
		results.PUT("", requireAdmin, handlers.Result.Update)
		results.DELETE("", requireAdmin, handlers.Result.Delete)
	}

	certificates := api.Group("/certificates")
	{
		certificates.GET("", handlers.Certificate.List)
		certificates.POST("", requireAdmin, handlers.Certificate.Create)
		certificates.PUT("", requireAdmin, handlers.Certificate.Update)
		certificates.DELETE("", requireAdmin, handlers.Certificate.Delete)
	}

	seminars := api.Group("/seminars")
	{
		seminars.GET("", handlers.Seminar.List)
		seminars.POST("", requireAdmin, handlers.Seminar.Save)
	}

	return router
}
