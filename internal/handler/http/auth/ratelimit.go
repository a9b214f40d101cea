package auth

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default limits for the auth endpoints. Credential stuffing is the concern
// here, so the bucket is small and refills slowly.
const (
	defaultAuthRPS   = 1.0
	defaultAuthBurst = 5
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiter hands out a token-bucket limiter per client IP. Idle entries
// must be evicted via evictIdle or the map grows for the process lifetime.
type ipLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	return &ipLimiter{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
}

func (l *ipLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if e, ok := l.entries[ip]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}
	e := &limiterEntry{
		limiter:  rate.NewLimiter(l.rps, l.burst),
		lastSeen: time.Now(),
	}
	l.entries[ip] = e
	return e.limiter
}

// evictIdle removes entries that have not been seen for maxIdle and reports
// how many were removed. An evicted IP gets a fresh bucket on its next
// request, which is harmless given the refill rate.
func (l *ipLimiter) evictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for ip, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, ip)
			removed++
		}
	}
	return removed
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// authLimiter is shared by every handler wrapped with RateLimit so one
// cleanup loop covers all auth endpoints.
var authLimiter = newIPLimiter(defaultAuthRPS, defaultAuthBurst)

// RateLimit wraps an auth handler with a per-IP token-bucket limit.
// Exceeding the limit returns 429 with a Retry-After hint.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !authLimiter.get(ip).Allow() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartRateLimitCleanup periodically evicts limiters for IPs idle longer
// than maxIdle. Runs until ctx is cancelled.
func StartRateLimitCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("auth rate limit cleanup started",
		slog.Duration("interval", interval),
		slog.Duration("max_idle", maxIdle))

	for {
		select {
		case <-ctx.Done():
			slog.Info("auth rate limit cleanup stopped")
			return
		case <-ticker.C:
			if removed := authLimiter.evictIdle(maxIdle); removed > 0 {
				slog.Debug("auth rate limiters evicted",
					slog.Int("removed", removed),
					slog.Int("remaining", authLimiter.size()))
			}
		}
	}
}

// clientIP extracts the remote address without the port. Proxy headers are
// deliberately ignored; they are trivially spoofable without a trusted
// proxy list.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
