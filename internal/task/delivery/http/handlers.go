package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/pkg/response"
)

// ListLists godoc
// @Summary     List task lists
// @Description Returns the caller's lists with their task counts, newest first.
// @Tags        Lists
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists [GET]
func (h *handler) ListLists(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	lists, err := h.uc.ListLists(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLists: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListsResp(lists))
}

// CreateList godoc
// @Summary     Create a list
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createListReq true "List data"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/lists [POST]
func (h *handler) CreateList(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	list, err := h.uc.CreateList(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(list))
}

// DeleteList godoc
// @Summary     Delete a list
// @Description Permanently removes a list and all of its tasks.
// @Tags        Lists
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "List ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id} [DELETE]
func (h *handler) DeleteList(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteList(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateTask godoc
// @Summary     Add a task to a list
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string        true "List ID"
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "List Not Found"
// @Router      /api/v1/lists/{id}/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.CreateTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// CreateTasks godoc
// @Summary     Add several tasks to a list
// @Description All tasks are created or none is.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string         true "List ID"
// @Param       body body createTasksReq true "Tasks"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "List Not Found"
// @Router      /api/v1/lists/{id}/tasks/batch [POST]
func (h *handler) CreateTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.CreateTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTasksResp(tasks))
}

// ListTasks godoc
// @Summary     List unfinished tasks
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       page    query int    false "Page (default: 1)"
// @Param       limit   query int    false "Page size (default: 10, max: 100)"
// @Param       sort_by query string false "priority | time_earliest | time_latest | duration_shortest | duration_longest"
// @Param       due     query string false "Relative day, e.g. today, tomorrow, in 3 days, 明天"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ListTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(out))
}

// Stats godoc
// @Summary     Task counts per status
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(out))
}

// TodayOverview godoc
// @Summary     Today's overview
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} todayOverviewResp
// @Router      /api/v1/tasks/today [GET]
func (h *handler) TodayOverview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.TodayOverview(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.TodayOverview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTodayOverviewResp(out))
}

// UpdateStatus godoc
// @Summary     Change a task's status
// @Description Completing a task records its completion time.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true "Task ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteTask(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
