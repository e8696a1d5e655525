package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ai-task-planner/pkg/response"
	"ai-task-planner/pkg/scope"
)

const bearerPrefix = "Bearer "

// Auth accepts a session token from the Authorization header or the session
// cookie and stores its payload in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m Middleware) extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	if m.cookieConfig.Name != "" {
		if cookie, err := c.Cookie(m.cookieConfig.Name); err == nil {
			return cookie
		}
	}
	return ""
}
