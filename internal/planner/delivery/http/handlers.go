package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-task-planner/internal/planner"
	"ai-task-planner/pkg/response"
)

// Chat godoc
// @Summary     Chat with the planning assistant
// @Description Sends the conversation to the assistant and returns its full reply with a preview of the tasks it proposes.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body chatReq true "Conversation so far, last message from the user"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Assistant failed"
// @Failure     503 {object} response.Resp "Assistant not configured"
// @Router      /api/v1/planner/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newChatResp(out))
}

// Preview godoc
// @Summary     Preview tasks in an AI response
// @Description Parses and validates without saving anything.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body previewReq true "AI response"
// @Success     200 {object} previewResp
// @Router      /api/v1/planner/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Preview(ctx, sc, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newPreviewResp(p))
}

// Import godoc
// @Summary     Import an AI response as a task list
// @Description Creates one list holding every task of the response, or nothing when the response does not validate.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body importReq true "AI response and list options"
// @Success     200 {object} importResp
// @Failure     422 {object} response.Resp "Validation errors"
// @Router      /api/v1/planner/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Import(ctx, sc, req.toInput())
	if err != nil {
		var vErr *planner.ValidationError
		if errors.As(err, &vErr) {
			response.Unprocessable(c, planner.ErrInvalidTasks, vErr.Errors)
			return
		}
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newImportResp(out))
}
