package http

import (
	"ai-task-planner/internal/planner"
	"ai-task-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the AI planner.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
