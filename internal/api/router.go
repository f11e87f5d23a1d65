package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobboard/internal/api/middleware"
	"jobboard/internal/config"
	"jobboard/internal/metrics"
)

// NewRouter builds the gin engine with the ambient middleware stack, the
// health and metrics endpoints, and static asset serving over the public
// root. API routes are registered separately via RegisterRoutes.
func NewRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.SlogLoggerMiddleware(logger))
	router.Use(metrics.GinMiddleware())
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Locally stored banners and the rest of the public root (pages, scripts).
	router.Static("/uploads", cfg.Storage.UploadsDir)
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.Storage.PublicDir))))

	return router
}
