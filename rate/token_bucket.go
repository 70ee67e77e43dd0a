package rate

import (
	"net/http"

	"golang.org/x/time/rate"
)

type tokenBucket struct {
	limiter *rate.Limiter
}

var _ Limiter = &tokenBucket{}

// NewTokenBucket allows requestsPerSecond requests on average
// with bursts of up to burst requests.
// A non-positive requestsPerSecond disables limiting.
func NewTokenBucket(requestsPerSecond float64, burst int) Limiter {
	if requestsPerSecond <= 0 {
		return NoopLimiter{}
	}
	if burst < 1 {
		burst = 1
	}
	return &tokenBucket{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

func (t *tokenBucket) Limit(req *http.Request) {
	// Wait only fails when the request context is done,
	// in which case the client call fails on its own.
	_ = t.limiter.Wait(req.Context())
}
