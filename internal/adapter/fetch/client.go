package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"user-pages/pkg/logger"
)

var _ Fetcher = (*Client)(nil)

// Client implements Fetcher on top of net/http.
type Client struct {
	httpClient *http.Client
	originHost string
	log        *zap.Logger
}

// NewClient creates a Client. origin is the upstream base URL used to decide
// same-origin credentials; timeout of zero means no client-side timeout.
func NewClient(origin string, timeout time.Duration, log *zap.Logger) *Client {
	var host string
	if u, err := url.Parse(origin); err == nil {
		host = u.Host
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		originHost: host,
		log:        log,
	}
}

// Fetch sends the request and reads the whole body before returning.
func (c *Client) Fetch(ctx context.Context, rawURL string, opts Options) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: new request: %w", err)
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if id := logger.GetRequestID(ctx); id != "" {
		req.Header.Set(logger.RequestIDHeader, id)
	}
	if c.attachCredentials(req, opts.Credentials) {
		for _, cookie := range CookiesFrom(ctx) {
			req.AddCookie(cookie)
		}
	}

	log := logger.WithContext(ctx, c.log).With(
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Stringer("credentials", opts.Credentials),
	)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("upstream request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, fmt.Errorf("fetch: %s %s: %w", method, rawURL, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Error("failed to read upstream response", zap.Int("status", res.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}

	log.Debug("upstream request completed",
		zap.Int("status", res.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)

	return NewResponse(res.StatusCode, body), nil
}

func (c *Client) attachCredentials(req *http.Request, mode Credentials) bool {
	switch mode {
	case Include:
		return true
	case Omit:
		return false
	default:
		return c.originHost != "" && req.URL.Host == c.originHost
	}
}
