package middleware

import (
	"net/http"
	"sync"
	"time"

	"eventra/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters  map[string]*rate.Limiter
	perMinute int
	mu        sync.Mutex
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), s.perMinute)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per client IP to perMinute, allowing
// bursts of the same size.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 200
	}
	store := &rateLimiterStore{limiters: make(map[string]*rate.Limiter), perMinute: perMinute}

	return func(c *gin.Context) {
		ip := clientIP(c)
		if !store.getLimiter(ip).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
