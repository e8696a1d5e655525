package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/model"
	pkgErrors "ai-task-planner/pkg/errors"
	"ai-task-planner/pkg/scope"
)

// processScope reads the caller set by the Auth middleware.
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
		return sc, "", errInvalidID
	}
	return sc, id, nil
}

func (h *handler) processCreateListReq(c *gin.Context) (createListReq, model.Scope, error) {
	var req createListReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, model.Scope, error) {
	var req createTaskReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ListID = id
	return req, sc, req.validate()
}

func (h *handler) processCreateTasksReq(c *gin.Context) (createTasksReq, model.Scope, error) {
	var req createTasksReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.ListID = id
	return req, sc, req.validate()
}

func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, model.Scope, error) {
	var req listTasksReq
	sc, err := h.processScope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, model.Scope, error) {
	var req updateStatusReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	req.TaskID = id
	return req, sc, req.validate()
}
