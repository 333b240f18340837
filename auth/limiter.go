package auth

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type loginWindow struct {
	start int64
	count int
}

// LoginLimiter is a fixed-window counter keyed by client address, held in
// process memory. Not durable across restarts and not shared between
// processes.
type LoginLimiter struct {
	Limit   int
	Window  time.Duration
	windows cmap.ConcurrentMap[string, loginWindow]
}

func NewLoginLimiter(limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		Limit:   limit,
		Window:  window,
		windows: cmap.New[loginWindow](),
	}
}

// Allow records an attempt from addr and reports whether it is within the
// limit for the current window.
func (l *LoginLimiter) Allow(addr string) bool {
	windowSeconds := int64(l.Window / time.Second)
	now := time.Now().Unix()
	start := now - now%windowSeconds
	updated := l.windows.Upsert(addr, loginWindow{start: start, count: 1},
		func(exists bool, current, insert loginWindow) loginWindow {
			if !exists || current.start != start {
				return insert
			}
			current.count++
			return current
		})
	return updated.count <= l.Limit
}
