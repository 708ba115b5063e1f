package server

import (
	"net/http"
	"time"

	ginhandler "user-rest-service/internal/adapter/gin/handler"
	"user-rest-service/internal/adapter/gin/middleware"
	ginrouter "user-rest-service/internal/adapter/gin/router"
	"user-rest-service/internal/config"

	"go.uber.org/zap"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	cfg *config.Config,
	userHandler *ginhandler.UserHandler,
	healthHandler *ginhandler.HealthHandler,
	rateLimiter *middleware.RateLimiter,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(userHandler, healthHandler, rateLimiter, ginrouter.Options{
		MetricsEnabled: cfg.App.MetricsEnabled,
		SwaggerEnabled: cfg.App.SwaggerEnabled,
	}, l)

	addr := ":" + cfg.App.Port
	l.Info("Gin REST API configured",
		zap.String("address", addr),
		zap.Bool("metrics", cfg.App.MetricsEnabled),
		zap.Bool("swagger", cfg.App.SwaggerEnabled),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
