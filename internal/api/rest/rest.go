package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-catalog/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Catalog endpoints (public read access)
		v1.GET("/catalog", handler.GetCatalog)
		v1.GET("/owners/:address/catalog", handler.GetOwnerCatalog)
		v1.GET("/tokens/:id/history", handler.GetTokenHistory)

		// Publishing (requires authentication, except pin status)
		v1.POST("/publish/file", middleware.Auth(authCfg), handler.PublishFile)
		v1.POST("/publish/metadata", middleware.Auth(authCfg), handler.PublishMetadata)
		v1.GET("/publish/status/:hash", handler.GetPinStatus)

		// Marketplace writes (requires authentication)
		v1.POST("/market/tokens", middleware.Auth(authCfg), handler.CreateToken)
		v1.POST("/market/tokens/:id/sale", middleware.Auth(authCfg), handler.ExecuteSale)
		v1.POST("/market/tokens/:id/resell", middleware.Auth(authCfg), handler.ResellToken)
		v1.POST("/market/approval", middleware.Auth(authCfg), handler.SetApproval)
	}
}
