package http

import (
	"ai-task-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the planner endpoints. Chat is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plannerGroup := rg.Group("/planner", mw.Auth())
	{
		plannerGroup.POST("/chat", mw.ChatRateLimit(), h.Chat)
		plannerGroup.POST("/preview", h.Preview)
		plannerGroup.POST("/import", h.Import)
	}
}
