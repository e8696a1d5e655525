package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/model"
	pkgErrors "ai-task-planner/pkg/errors"
	"ai-task-planner/pkg/scope"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return model.NewScope(payload), nil
}

func (h *handler) processSignInReq(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
