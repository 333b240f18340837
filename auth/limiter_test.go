package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiterAllow(t *testing.T) {
	limiter := NewLoginLimiter(3, time.Hour)
	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("198.51.100.7"), "attempt %d within the limit", i+1)
	}
	assert.False(t, limiter.Allow("198.51.100.7"), "fourth attempt rejected")
	assert.True(t, limiter.Allow("203.0.113.5"), "other addresses counted separately")
}

func TestLoginLimiterWindowReset(t *testing.T) {
	// A one-second window rolls over quickly enough to observe. Align to
	// the start of a window so the first two calls land in the same one.
	limiter := NewLoginLimiter(1, time.Second)
	time.Sleep(time.Until(time.Now().Truncate(time.Second).Add(time.Second + 50*time.Millisecond)))
	assert.True(t, limiter.Allow("198.51.100.7"))
	assert.False(t, limiter.Allow("198.51.100.7"))
	time.Sleep(1100 * time.Millisecond)
	assert.True(t, limiter.Allow("198.51.100.7"), "new window, counter reset")
}
