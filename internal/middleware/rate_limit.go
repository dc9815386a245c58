package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/cnsllgllr/qrmaster/pkg/utils"
)

type ipLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// RateLimit applies a per-IP token bucket allowing the given number of
// requests per minute. Stale limiters are evicted opportunistically.
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute < 1 {
		perMinute = 1
	}
	every := rate.Every(time.Minute / time.Duration(perMinute))
	burst := perMinute

	limiters := map[string]*ipLimiter{}
	var mu sync.Mutex

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		now := time.Now()
		for key, l := range limiters {
			if now.After(l.expires) {
				delete(limiters, key)
			}
		}
		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{limiter: rate.NewLimiter(every, burst)}
			limiters[ip] = l
		}
		l.expires = now.Add(5 * time.Minute)
		allowed := l.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.JSON(http.StatusTooManyRequests, utils.APIResponse{
				Success: false,
				Message: "Too many requests",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
