package router

import (
	"net/http"

	"user-pages/internal/adapter/gin/handler"
	"user-pages/internal/adapter/gin/middleware"
	"user-pages/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware.
// redisClient may be nil, in which case rate limiting is skipped.
func SetupRouter(
	pageHandler *handler.PageHandler,
	rateLimit middleware.RateLimiterConfig,
	redisClient *redis.Client,
	serviceName string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(rateLimit, redisClient, log))
	router.Use(middleware.Credentials())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	users := router.Group("/users")
	{
		users.GET("", pageHandler.ListUsers)
		users.GET("/:id", pageHandler.GetUser)
	}

	router.GET("/stream/users", pageHandler.StreamUsers)

	return router
}
