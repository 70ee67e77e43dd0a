package rate

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_NewTokenBucket_disabled(t *testing.T) {
	assert.Equal(t, NoopLimiter{}, NewTokenBucket(0, 10))
	assert.Equal(t, NoopLimiter{}, NewTokenBucket(-1, 10))
}

func Test_TokenBucket_burst_is_not_delayed(t *testing.T) {
	l := NewTokenBucket(1, 3)
	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		l.Limit(req)
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func Test_TokenBucket_throttles_after_burst(t *testing.T) {
	l := NewTokenBucket(20, 1)
	req, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)

	start := time.Now()
	l.Limit(req)
	l.Limit(req)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func Test_NoopLimiter(t *testing.T) {
	NoopLimiter{}.Limit(nil)
}
