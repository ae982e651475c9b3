package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/review-platform/internal/config"
	"github.com/ignatzorin/review-platform/internal/http/handlers"
	"github.com/ignatzorin/review-platform/internal/http/middleware"
	"github.com/ignatzorin/review-platform/internal/service"
)

// SetupRouter собирает маршруты приложения.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	contentHandler *handlers.ContentHandler,
	reviewHandler *handlers.ReviewHandler,
	reportHandler *handlers.ReportHandler,
	moderationHandler *handlers.ModerationHandler,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Публичные маршруты
	api.GET("/contents", contentHandler.ListContents)
	api.GET("/reviews", reviewHandler.ListReviews)
	api.GET("/reviews/:id", middleware.UUIDValidator("id"), reviewHandler.GetReview)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.POST("/contents", contentHandler.CreateContent)
		protected.POST("/reviews", reviewHandler.SubmitReview)
		protected.POST("/reviews/:id/comments", middleware.UUIDValidator("id"), reviewHandler.AddComment)
		protected.POST("/reports", reportHandler.FileReport)
	}

	// Маршруты модератора
	mod := api.Group("/moderation")
	mod.Use(middleware.AuthMiddleware(tokenManager), middleware.RequireModerator())
	{
		mod.GET("/terms", moderationHandler.ListTerms)
		mod.POST("/terms", moderationHandler.AddTerm)
		mod.DELETE("/terms/:term", moderationHandler.RemoveTerm)
		mod.GET("/reports", moderationHandler.ListReports)
		mod.GET("/reports/:id", middleware.UUIDValidator("id"), moderationHandler.GetReport)
		mod.GET("/feed", wsHandler.Feed)
	}

	return r
}
