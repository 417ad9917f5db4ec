package chi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MsgRateLimited is the 429 body message.
const MsgRateLimited = "Muitas requisições. Aguarde um momento e tente novamente."

// limiterTTL bounds how long an idle client keeps its limiter.
const limiterTTL = time.Hour

// clientLimiters hands out one token bucket per client IP.
type clientLimiters struct {
	mu          sync.Mutex
	limiters    map[string]*rate.Limiter
	lastCleanup time.Time
	rps         rate.Limit
	burst       int
}

func (c *clientLimiters) get(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.lastCleanup) > limiterTTL {
		c.limiters = make(map[string]*rate.Limiter)
		c.lastCleanup = time.Now()
	}

	l, ok := c.limiters[ip]
	if !ok {
		l = rate.NewLimiter(c.rps, c.burst)
		c.limiters[ip] = l
	}
	return l
}

// RateLimitMiddleware rejects requests of a client beyond rps requests per
// second (with the given burst) with 429. Clients are keyed by RemoteAddr,
// so chiMiddleware.RealIP should run first behind a proxy.
func RateLimitMiddleware(rps float64, burst int) func(next http.Handler) http.Handler {
	if burst < 1 {
		burst = 1
	}
	limiters := &clientLimiters{
		limiters:    make(map[string]*rate.Limiter),
		lastCleanup: time.Now(),
		rps:         rate.Limit(rps),
		burst:       burst,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiters.get(clientIP(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, MsgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if ip, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return ip
	}
	return r.RemoteAddr
}
