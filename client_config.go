package sendpost_go

import (
	"net/http"
	"time"

	"github.com/sendpost/sendpost-go/api"
	"github.com/sendpost/sendpost-go/logger"
	"github.com/sendpost/sendpost-go/rate"
)

type config struct {
	// baseUrl is the SendPost API root every path is appended to
	// default: https://api.sendpost.io/api/v1
	baseUrl string

	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// limiter is applied before every request
	// default: rate.NoopLimiter
	limiter rate.Limiter

	// logger provides logging functionality for all internal
	// sendpost-go client operations
	// default: logger.Noop
	logger logger.Logger
}

func defaultConfig() *config {
	return &config{
		baseUrl:   api.DefaultBaseUrl,
		transport: http.DefaultTransport,
		timeout:   10 * time.Second,
		limiter:   rate.NoopLimiter{},
		logger:    logger.Noop{},
	}
}

type ConfigOption func(c *config)

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		if baseUrl != "" {
			c.baseUrl = baseUrl
		}
	}
}

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}
