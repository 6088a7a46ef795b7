// Package middleware provides the HTTP middleware stack: recovery, request
// logging, CORS and per-IP rate limiting.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/shashiranjanraj/venuebook/config"
	"github.com/shashiranjanraj/venuebook/pkg/response"
)

type bucket struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per client IP in fixed windows. Expired windows
// are swept on access, so no goroutine is needed.
type Limiter struct {
	max     int
	window  time.Duration
	now     func() time.Time
	trusted []string

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		now:     time.Now,
		trusted: config.TrustedProxies(),
		buckets: make(map[string]*bucket),
	}
}

// Allow records one request from ip and reports whether it is within budget.
func (l *Limiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextSweep) {
		for k, b := range l.buckets {
			if now.After(b.resetAt) {
				delete(l.buckets, k)
			}
		}
		l.nextSweep = now.Add(l.window)
	}

	b, ok := l.buckets[ip]
	if !ok || now.After(b.resetAt) {
		b = &bucket{resetAt: now.Add(l.window)}
		l.buckets[ip] = b
	}
	b.count++
	return b.count <= l.max
}

// Middleware rejects requests over budget with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r, l.trusted)) {
			response.Error(w, http.StatusTooManyRequests, "Too Many Requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimit limits each IP to max requests per window.
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return NewLimiter(max, window).Middleware
}
