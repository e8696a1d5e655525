package http

import (
	"net/http"

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

func (h *handler) processIDReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, "", err
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	return sc, id, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}
