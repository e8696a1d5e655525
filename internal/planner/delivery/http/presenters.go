package http

import (
	"time"

	"ai-task-planner/internal/planner"
	"ai-task-planner/pkg/taskparser"
)

type messageReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
	Content string `json:"content"`
}

type chatReq struct {
	Messages []messageReq `json:"messages" binding:"required,dive"`
}

func (r chatReq) validate() error {
	if len(r.Messages) == 0 {
		return planner.ErrEmptyMessages
	}
	return nil
}

func (r chatReq) toInput() planner.ChatInput {
	msgs := make([]planner.Message, len(r.Messages))
	for i, m := range r.Messages {
		msgs[i] = planner.Message{Role: m.Role, Content: m.Content}
	}
	return planner.ChatInput{Messages: msgs}
}

type previewReq struct {
	AIResponse string `json:"ai_response" binding:"required"`
}

func (r previewReq) toInput() planner.PreviewInput {
	return planner.PreviewInput{AIResponse: r.AIResponse}
}

type importReq struct {
	AIResponse   string `json:"ai_response"   binding:"required"`
	ListName     string `json:"list_name"     binding:"max=100"`
	ListColor    string `json:"list_color"    binding:"omitempty,hexcolor"`
	SyncCalendar bool   `json:"sync_calendar"`
}

func (r importReq) toInput() planner.ImportInput {
	return planner.ImportInput{
		AIResponse:   r.AIResponse,
		ListName:     r.ListName,
		ListColor:    r.ListColor,
		SyncCalendar: r.SyncCalendar,
	}
}

type parsedTaskResp struct {
	Content        string     `json:"content"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	EstimatedHours *float64   `json:"estimated_hours"`
	StartTime      *time.Time `json:"start_time"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

type previewResp struct {
	ListName string           `json:"list_name"`
	Tasks    []parsedTaskResp `json:"tasks"`
	Valid    bool             `json:"valid"`
	Errors   []string         `json:"errors"`
}

func newPreviewResp(p planner.Preview) previewResp {
	tasks := make([]parsedTaskResp, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = newParsedTaskResp(t)
	}
	errs := p.Validation.Errors
	if errs == nil {
		errs = []string{}
	}
	return previewResp{
		ListName: p.ListName,
		Tasks:    tasks,
		Valid:    p.Validation.Valid,
		Errors:   errs,
	}
}

func newParsedTaskResp(t taskparser.ParsedTask) parsedTaskResp {
	return parsedTaskResp{
		Content:        t.Content,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		EstimatedHours: t.EstimatedHours,
		StartTime:      t.StartTime,
		ExpiresAt:      t.ExpiresAt,
	}
}

type chatResp struct {
	Reply    string      `json:"reply"`
	Provider string      `json:"provider"`
	Model    string      `json:"model"`
	Preview  previewResp `json:"preview"`
}

func newChatResp(out planner.ChatOutput) chatResp {
	return chatResp{
		Reply:    out.Reply,
		Provider: out.Provider,
		Model:    out.Model,
		Preview:  newPreviewResp(out.Preview),
	}
}

type importResp struct {
	ListID         string `json:"list_id"`
	ListName       string `json:"list_name"`
	TaskCount      int    `json:"task_count"`
	Message        string `json:"message"`
	CalendarEvents int    `json:"calendar_events"`
}

func newImportResp(out planner.ImportOutput) importResp {
	return importResp{
		ListID:         out.ListID,
		ListName:       out.ListName,
		TaskCount:      out.TaskCount,
		Message:        out.Message,
		CalendarEvents: out.CalendarEvents,
	}
}
