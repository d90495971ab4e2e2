package api

import (
	"github.com/chatfolio/chatfolio/internal/api/assistant"
	"github.com/chatfolio/chatfolio/internal/api/middleware"
	"github.com/chatfolio/chatfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(orchestrator *service.Orchestrator, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Assistant API (public, keyed by session)
	assistantHandler := assistant.NewHandler(orchestrator)
	assistantGroup := r.Group("/api/assistant")
	assistantHandler.RegisterRoutes(assistantGroup)

	return r
}
