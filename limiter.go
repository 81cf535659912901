package sharecard

import (
	"sync"
	"time"
)

// loginLimiter is a fixed-window per-IP limiter for admin login attempts.
type loginLimiter struct {
	mu      sync.Mutex
	buckets map[string]*loginBucket
	max     int
	window  time.Duration
}

type loginBucket struct {
	count   int
	started time.Time
}

func newLoginLimiter(max int, window time.Duration) *loginLimiter {
	return &loginLimiter{
		buckets: make(map[string]*loginBucket),
		max:     max,
		window:  window,
	}
}

// Allow reports whether ip may attempt another login within the current
// window, counting the attempt if so.
func (l *loginLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now)

	b := l.buckets[ip]
	if b == nil || now.Sub(b.started) >= l.window {
		l.buckets[ip] = &loginBucket{count: 1, started: now}
		return true
	}
	if b.count >= l.max {
		return false
	}
	b.count++
	return true
}

// prune drops expired buckets once the map gets large, so an attacker
// rotating source IPs cannot grow it without bound. Caller holds mu.
func (l *loginLimiter) prune(now time.Time) {
	if len(l.buckets) < 1024 {
		return
	}
	for ip, b := range l.buckets {
		if now.Sub(b.started) >= l.window {
			delete(l.buckets, ip)
		}
	}
}
