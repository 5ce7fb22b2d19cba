package di

import (
	"context"
	"fmt"

	"user-pages/cmd/web/infrastructure"
	"user-pages/internal/adapter/fetch"
	ginhandler "user-pages/internal/adapter/gin/handler"
	"user-pages/internal/config"
	"user-pages/internal/usecase/user"
	redisclient "user-pages/pkg/redis"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	RedisClient *redisclient.Client // nil when rate limiting is disabled
	Fetcher     *fetch.Client
	Loader      *user.Usecase
	PageHandler *ginhandler.PageHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	fetcher := fetch.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout(), l.Named("fetch"))
	loader := user.New(fetcher, cfg.Upstream.BaseURL, l.Named("loader"))
	pageHandler := ginhandler.NewPageHandler(loader, fetcher, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		RedisClient: rdb,
		Fetcher:     fetcher,
		Loader:      loader,
		PageHandler: pageHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}
	return nil
}
