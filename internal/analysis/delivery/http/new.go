package http

import (
	"ai-task-planner/internal/analysis"
	"ai-task-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

func New(l log.Logger, uc analysis.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
