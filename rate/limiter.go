package rate

import "net/http"

// Limiter controls request rates to the SendPost API.
//
// The Limiter interface provides rate limiting functionality to prevent
// exceeding SendPost API rate limits. Implementations can use different
// strategies such as:
//   - Token bucket algorithm
//   - Fixed window counting
//   - Sliding window counting
//   - Leaky bucket algorithm
//
// NewTokenBucket provides a token bucket backed by golang.org/x/time/rate:
//
//	client := sendpost_go.NewClient(
//	    accountKey, subAccountKey,
//	    sendpost_go.WithRateLimiter(rate.NewTokenBucket(5, 1)),
//	)
//
// The Limit method is called before each request to potentially delay
// or throttle the request based on the current rate limiting state.
// This helps maintain good API citizenship and prevents rate limit errors.
type Limiter interface {
	// Limit applies rate limiting to the given request. This method
	// should block if necessary to maintain the desired request rate.
	// The implementation can use the request information (method, path, etc.)
	// to apply different rate limits for different endpoints.
	Limit(req *http.Request)
}
