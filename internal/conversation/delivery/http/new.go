package http

import (
	"ai-task-planner/internal/conversation"
	"ai-task-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New creates a new HTTP handler for conversation history.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
