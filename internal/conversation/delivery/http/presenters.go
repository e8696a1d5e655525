package http

import (
	"time"

	"ai-task-planner/internal/conversation"
	"ai-task-planner/internal/model"
)

type listReq struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() conversation.ListInput {
	return conversation.ListInput{Page: r.Page, Limit: r.Limit}
}

type createReq struct {
	Title      string `json:"title"       binding:"required,max=200"`
	UserInput  string `json:"user_input"  binding:"required"`
	AIResponse string `json:"ai_response" binding:"required"`
	TaskCount  int    `json:"task_count"  binding:"min=0"`
	ListName   string `json:"list_name"   binding:"max=100"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() conversation.CreateInput {
	return conversation.CreateInput{
		Title:      r.Title,
		UserInput:  r.UserInput,
		AIResponse: r.AIResponse,
		TaskCount:  r.TaskCount,
		ListName:   r.ListName,
	}
}

type conversationResp struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	UserInput  string    `json:"user_input"`
	AIResponse string    `json:"ai_response,omitempty"`
	TaskCount  int       `json:"task_count"`
	ListName   string    `json:"list_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newConversationResp(c model.Conversation) conversationResp {
	return conversationResp{
		ID:         c.ID,
		Title:      c.Title,
		UserInput:  c.UserInput,
		AIResponse: c.AIResponse,
		TaskCount:  c.TaskCount,
		ListName:   c.ListName,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type paginationResp struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type listResp struct {
	Conversations []conversationResp `json:"conversations"`
	Pagination    paginationResp     `json:"pagination"`
}

func (h *handler) newListResp(out conversation.ListOutput) listResp {
	items := make([]conversationResp, len(out.Conversations))
	for i, c := range out.Conversations {
		items[i] = newConversationResp(c)
	}
	return listResp{
		Conversations: items,
		Pagination: paginationResp{
			Page:       out.Page,
			Limit:      out.Limit,
			Total:      out.Total,
			TotalPages: out.TotalPages,
		},
	}
}
