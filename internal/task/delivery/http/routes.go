package http

import (
	"ai-task-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the list and task endpoints. Every route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	lists := rg.Group("/lists", mw.Auth())
	{
		lists.GET("", h.ListLists)
		lists.POST("", h.CreateList)
		lists.DELETE("/:id", h.DeleteList)
		lists.POST("/:id/tasks", h.CreateTask)
		lists.POST("/:id/tasks/batch", h.CreateTasks)
	}

	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/stats", h.Stats)
		tasks.GET("/today", h.TodayOverview)
		tasks.PATCH("/:id/status", h.UpdateStatus)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}
