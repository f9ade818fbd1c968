package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"botlauncher/utils"
)

// ipRateLimiter hands out one token bucket per client IP. Uptime monitors
// ping the keep-alive endpoint every few minutes; anything faster is abuse.
type ipRateLimiter struct {
	mu  sync.Mutex
	ips map[string]*rate.Limiter
	r   rate.Limit
	b   int
}

func (i *ipRateLimiter) get(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	lim, ok := i.ips[ip]
	if !ok {
		lim = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = lim
	}
	return lim
}

// reset drops all buckets periodically so the map cannot grow unbounded.
func (i *ipRateLimiter) reset(every time.Duration) {
	for {
		time.Sleep(every)
		i.mu.Lock()
		i.ips = make(map[string]*rate.Limiter)
		i.mu.Unlock()
	}
}

// RateLimit enforces per-IP rate limiting
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	lim := &ipRateLimiter{ips: make(map[string]*rate.Limiter), r: r, b: burst}
	go lim.reset(10 * time.Minute)

	return func(c *gin.Context) {
		if !lim.get(c.ClientIP()).Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests. Please slow down.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
