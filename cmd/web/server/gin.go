package server

import (
	"net/http"
	"time"

	ginhandler "user-pages/internal/adapter/gin/handler"
	"user-pages/internal/adapter/gin/middleware"
	ginrouter "user-pages/internal/adapter/gin/router"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SetupGinServer creates and configures the page data server
func SetupGinServer(
	handler *ginhandler.PageHandler,
	rateLimit middleware.RateLimiterConfig,
	redisClient *redis.Client,
	addr string,
	serviceName string,
	l *zap.Logger,
) *http.Server {
	router := ginrouter.SetupRouter(handler, rateLimit, redisClient, serviceName, l)

	l.Info("page server configured", zap.String("address", addr))

	// No WriteTimeout: /stream/users holds the connection until the load ends.
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
