package http

import (
	"ai-task-planner/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/sign-in", h.SignIn)
		authGroup.POST("/sign-out", h.SignOut)
		authGroup.GET("/me", mw.Auth(), h.Me)
	}
}
