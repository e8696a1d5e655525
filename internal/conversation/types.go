package conversation

import "ai-task-planner/internal/model"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type CreateInput struct {
	Title      string
	UserInput  string
	AIResponse string
	TaskCount  int
	ListName   string
}

type ListInput struct {
	Page  int
	Limit int
}

// ListOutput holds one page of history, newest first. AIResponse is not loaded.
type ListOutput struct {
	Conversations []model.Conversation
	Page          int
	Limit         int
	Total         int
	TotalPages    int
}
