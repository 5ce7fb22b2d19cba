package app

import (
	"context"
	"testing"
	"time"

	"user-pages/cmd/web/di"
	"user-pages/cmd/web/server"
	"user-pages/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	cfg.App.HTTPPort = "0"
	cfg.App.ShutdownTimeoutSeconds = 1
	cfg.RateLimit.Enabled = false
	return cfg
}

func TestApp_RunAndShutdown(t *testing.T) {
	cfg := testConfig(t)
	l := zaptest.NewLogger(t)

	container, err := di.NewContainer(context.Background(), cfg, l)
	require.NoError(t, err)
	assert.Nil(t, container.RedisClient)

	a := &App{
		Config:    cfg,
		Logger:    l,
		Server:    server.New(container),
		Container: container,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("application did not shut down")
	}
}

func TestContainer_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Upstream.BaseURL = "::not-a-url"

	_, err := di.NewContainer(context.Background(), cfg, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "config validation failed")
}
