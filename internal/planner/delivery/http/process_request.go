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

func (h *handler) processChatReq(c *gin.Context) (chatReq, model.Scope, error) {
	var req chatReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processPreviewReq(c *gin.Context) (previewReq, model.Scope, error) {
	var req previewReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, nil
}

func (h *handler) processImportReq(c *gin.Context) (importReq, model.Scope, error) {
	var req importReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, nil
}
