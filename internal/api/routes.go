package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"webprompt_server/internal/middleware"
)

// RegisterRoutes wires middleware and API endpoints onto the Gin engine.
// CORS is wide open: the backend serves browser frontends on arbitrary
// origins during prototyping, so any origin, method and header is accepted.
func RegisterRoutes(router *gin.Engine, handler *APIHandler) {
	// RequestID goes first: CORS aborts preflight requests, and those
	// responses must still carry the id header.
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/", handler.Root)
	router.GET("/health", handler.Health)
	router.GET("/test", handler.TestConnection)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/hello", handler.Hello)
		apiGroup.GET("/models", handler.ListModels)
		apiGroup.POST("/generate-prompt", handler.GeneratePrompt)
	}
}
