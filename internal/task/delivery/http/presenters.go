package http

import (
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/taskparser"
)

// --- Request DTOs ---

type createListReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=50"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

func (r createListReq) validate() error { return nil }

func (r createListReq) toInput() task.CreateListInput {
	return task.CreateListInput{Name: r.Name, Color: r.Color}
}

// ---

type taskItemReq struct {
	Content   string     `json:"content"    binding:"required,min=1"`
	Priority  string     `json:"priority"   binding:"omitempty,oneof=low medium high urgent"`
	Status    string     `json:"status"     binding:"omitempty,oneof=pending in_progress completed paused cancelled"`
	StartTime *time.Time `json:"start_time"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (r taskItemReq) toInput(listID string) task.CreateTaskInput {
	return task.CreateTaskInput{
		ListID:    listID,
		Content:   r.Content,
		Priority:  taskparser.Priority(r.Priority),
		Status:    taskparser.Status(r.Status),
		StartTime: r.StartTime,
		ExpiresAt: r.ExpiresAt,
	}
}

type createTaskReq struct {
	ListID string `json:"-"` // populated from URI param
	taskItemReq
}

func (r createTaskReq) validate() error { return nil }

func (r createTaskReq) toInput() task.CreateTaskInput {
	return r.taskItemReq.toInput(r.ListID)
}

type createTasksReq struct {
	ListID string        `json:"-"`
	Tasks  []taskItemReq `json:"tasks" binding:"required,min=1,dive"`
}

func (r createTasksReq) validate() error { return nil }

func (r createTasksReq) toInput() task.CreateTasksInput {
	items := make([]task.CreateTaskInput, len(r.Tasks))
	for i, t := range r.Tasks {
		items[i] = t.toInput(r.ListID)
	}
	return task.CreateTasksInput{ListID: r.ListID, Tasks: items}
}

// ---

type listTasksReq struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	SortBy string `form:"sort_by"`
	Due    string `form:"due"`
}

func (r listTasksReq) validate() error { return nil }

func (r listTasksReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Page:   r.Page,
		Limit:  r.Limit,
		SortBy: task.SortBy(r.SortBy),
		Due:    r.Due,
	}
}

// ---

type updateStatusReq struct {
	TaskID string `json:"-"`
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) validate() error { return nil }

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{TaskID: r.TaskID, Status: taskparser.Status(r.Status)}
}

// --- Response DTOs ---

type listResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	TaskCount int       `json:"task_count"`
	CreatedAt time.Time `json:"created_at"`
}

func newListResp(l model.List) listResp {
	return listResp{
		ID:        l.ID,
		Name:      l.Name,
		Color:     l.Color,
		TaskCount: l.TaskCount,
		CreatedAt: l.CreatedAt,
	}
}

type listsResp struct {
	Lists []listResp `json:"lists"`
}

func (h *handler) newListsResp(lists []model.List) listsResp {
	items := make([]listResp, len(lists))
	for i, l := range lists {
		items[i] = newListResp(l)
	}
	return listsResp{Lists: items}
}

type taskResp struct {
	ID             string     `json:"id"`
	ListID         string     `json:"list_id"`
	ListName       string     `json:"list_name,omitempty"`
	ListColor      string     `json:"list_color,omitempty"`
	Content        string     `json:"content"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	EstimatedHours *float64   `json:"estimated_hours"`
	StartTime      *time.Time `json:"start_time"`
	ExpiresAt      *time.Time `json:"expires_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:             t.ID,
		ListID:         t.ListID,
		ListName:       t.ListName,
		ListColor:      t.ListColor,
		Content:        t.Content,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		EstimatedHours: t.EstimatedHours,
		StartTime:      t.StartTime,
		ExpiresAt:      t.ExpiresAt,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
	}
}

type tasksResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newTasksResp(tasks []model.Task) tasksResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return tasksResp{Tasks: items}
}

type paginationResp struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type listTasksResp struct {
	Tasks      []taskResp     `json:"tasks"`
	Pagination paginationResp `json:"pagination"`
}

func (h *handler) newListTasksResp(out task.ListTasksOutput) listTasksResp {
	totalPages := 0
	if out.Limit > 0 {
		totalPages = (out.Total + out.Limit - 1) / out.Limit
	}
	return listTasksResp{
		Tasks: h.newTasksResp(out.Tasks).Tasks,
		Pagination: paginationResp{
			Page:       out.Page,
			Limit:      out.Limit,
			Total:      out.Total,
			TotalPages: totalPages,
		},
	}
}

type statsResp struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		Total:      out.Total,
		Pending:    out.Pending,
		InProgress: out.InProgress,
		Completed:  out.Completed,
	}
}

type todayOverviewResp struct {
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	Pending        int `json:"pending"`
	CreatedToday   int `json:"created_today"`
	CompletionRate int `json:"completion_rate"`
}

func (h *handler) newTodayOverviewResp(out task.TodayOverviewOutput) todayOverviewResp {
	return todayOverviewResp{
		Completed:      out.Completed,
		InProgress:     out.InProgress,
		Pending:        out.Pending,
		CreatedToday:   out.CreatedToday,
		CompletionRate: out.CompletionRate,
	}
}
