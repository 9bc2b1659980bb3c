package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// NoStore keeps browsers from caching pages that carry per-session state.
func (m Middleware) NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

// RequestLog logs one line per request once the handler chain finishes.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		if status >= 500 {
			m.l.Errorf(ctx, "http %s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
			return
		}
		m.l.Debugf(ctx, "http %s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
