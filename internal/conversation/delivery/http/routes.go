package http

import (
	"ai-task-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	conversations := rg.Group("/conversations", mw.Auth())
	{
		conversations.GET("", h.List)
		conversations.POST("", h.Create)
		conversations.GET("/:id", h.Detail)
		conversations.DELETE("/:id", h.Delete)
	}
}
