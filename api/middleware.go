package api

import (
	"net/http"
	api_types "pricefeed/api-types"
	"pricefeed/internal/metrics"
	"pricefeed/internal/util"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const requestIdHeader = "X-Request-ID"

// limiters are dropped wholesale once this many clients have been seen
const maxTrackedClients = 10000

type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIpRateLimiter(cfg util.RateLimitConfig) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(cfg.Rps),
		burst:    cfg.Burst,
	}
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		if len(l.limiters) >= maxTrackedClients {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

func (l *ipRateLimiter) middleware(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !l.get(clientIP).Allow() {
			logger.WithFields(logrus.Fields{
				"client_ip": clientIP,
				"path":      c.Request.URL.Path,
			}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api_types.ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func requestId(c *gin.Context) {
	id := c.GetHeader(requestIdHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIdHeader, id)
	c.Header(requestIdHeader, id)
	c.Next()
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(requestIdHeader),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Info("request handled")
		}
	}
}

func requestMetrics(c *gin.Context) {
	done := metrics.TrackInFlight()
	defer done()

	start := time.Now()
	c.Next()
	// FullPath is the route pattern, which keeps label cardinality bounded
	metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
}
