package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"user-pages/cmd/web/di"
	"user-pages/internal/adapter/gin/middleware"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Server holds the page data HTTP server
type Server struct {
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance from the container
func New(c *di.Container) *Server {
	var rdb *redis.Client
	if c.RedisClient != nil {
		rdb = c.RedisClient.Client
	}

	rateLimit := middleware.RateLimiterConfig{
		RequestsPerSecond: c.Config.RateLimit.RequestsPerSecond,
		BurstCapacity:     c.Config.RateLimit.BurstCapacity,
		Enabled:           c.Config.RateLimit.Enabled,
	}

	return &Server{
		Logger: c.Logger,
		HTTP: SetupGinServer(
			c.PageHandler,
			rateLimit,
			rdb,
			":"+c.Config.App.HTTPPort,
			c.Config.Logger.ServiceName,
			c.Logger,
		),
	}
}

// Start serves until the server is shut down. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.Logger.Info("page server running", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down page server...")
	return s.HTTP.Shutdown(ctx)
}
