package http

import (
	"ai-task-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	analysisGroup := rg.Group("/analysis", mw.Auth())
	{
		analysisGroup.GET("/stats", h.Stats)
		analysisGroup.GET("/activity", h.Activity)
		analysisGroup.GET("/leaderboard", h.Leaderboard)
		analysisGroup.GET("/insights", h.Insights)
	}
}
