package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-task-planner/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// Trace tags every request with an id, reusing the caller's X-Request-ID when present.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.SetTraceID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one line per request once the handler chain has finished.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
