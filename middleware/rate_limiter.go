package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// requestsPerMinute bounds each client IP. Generous enough for the admin
// panel polling the service list, tight enough to blunt scripted abuse.
const requestsPerMinute = 200

// ipLimiters tracks one token bucket per client IP.
type ipLimiters struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

var limiters = &ipLimiters{buckets: make(map[string]*rate.Limiter)}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[ip]
	if !ok {
		bucket = rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), requestsPerMinute)
		l.buckets[ip] = bucket
	}
	return bucket
}

// RateLimitMiddleware rejects requests from IPs exceeding their budget.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !limiters.get(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
