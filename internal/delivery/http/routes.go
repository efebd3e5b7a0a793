package http

import (
	"github.com/gin-gonic/gin"

	"github.com/shopwise/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	api := router.Group("/api")
	{
		api.GET("/health", handler.HealthCheck)
		api.POST("/search", handler.SearchProducts)
		api.POST("/evaluate", handler.Evaluate)
		api.POST("/signup", handler.Signup)
	}

	return router
}
