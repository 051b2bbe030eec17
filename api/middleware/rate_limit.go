package middleware

import (
	"net/http"
	"sync"
	"time"

	"filevault/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// GlobalAPIRateLimit throttles requests per client IP. Disabled when
// THROTTLE_QPS is zero. This is infrastructure throttling, separate from
// the domain-level message admission check.
func GlobalAPIRateLimit() gin.HandlerFunc {
	if common.ThrottleQPS <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*clientLimiter)
	)
	qps := rate.Limit(common.ThrottleQPS)
	burst := common.ThrottleQPS

	// Drop limiters that have been idle for a while so the map cannot
	// grow without bound.
	go func() {
		for range time.Tick(time.Minute) {
			mu.Lock()
			for ip, client := range limiters {
				if time.Since(client.lastSeen) > 3*time.Minute {
					delete(limiters, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		client, ok := limiters[ip]
		if !ok {
			client = &clientLimiter{limiter: rate.NewLimiter(qps, burst)}
			limiters[ip] = client
		}
		client.lastSeen = time.Now()
		mu.Unlock()

		if !client.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
