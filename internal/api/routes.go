package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"jobboard/internal/api/middleware"
	"jobboard/internal/auth"
	"jobboard/internal/banner"
	"jobboard/internal/poster"
	"jobboard/internal/settings"
)

// RegisterRoutes wires the JSON API under the /api prefix.
func RegisterRoutes(
	router *gin.Engine,
	posterRepo *poster.Repository,
	settingsRepo *settings.Repository,
	backend banner.Backend,
	creds *auth.Credentials,
	logger *slog.Logger,
	clamdAddr string,
) {
	posterHandler := NewPosterHandler(posterRepo, logger)
	settingsHandler := NewSettingsHandler(settingsRepo, logger)
	uploadHandler := NewUploadHandler(backend, logger, clamdAddr)
	authHandler := NewAuthHandler(creds, logger)
	sanitize := middleware.SanitizeJSONMiddleware()

	api := router.Group("/api")
	{
		api.GET("/posters", posterHandler.List)
		api.POST("/posters", sanitize, posterHandler.Create)
		api.PUT("/posters/:id", sanitize, posterHandler.Update)
		api.DELETE("/posters/:id", posterHandler.Delete)

		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", sanitize, settingsHandler.Replace)

		api.POST("/upload", uploadHandler.Upload)
		api.POST("/login", authHandler.Login)
	}
}
