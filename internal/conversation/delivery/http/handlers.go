package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/pkg/response"
)

// List godoc
// @Summary     Conversation history
// @Description Returns the caller's saved conversations, newest first. The AI response body is omitted.
// @Tags        Conversations
// @Produce     json
// @Security    BearerAuth
// @Param       page  query int false "Page (default: 1)"
// @Param       limit query int false "Page size (default: 10, max: 100)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/conversations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Create godoc
// @Summary     Save a conversation
// @Tags        Conversations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Conversation"
// @Success     200 {object} conversationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/conversations [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conv, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(conv))
}

// Detail godoc
// @Summary     Conversation detail
// @Tags        Conversations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Conversation ID"
// @Success     200 {object} conversationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conv, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newConversationResp(conv))
}

// Delete godoc
// @Summary     Delete a conversation
// @Tags        Conversations
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
