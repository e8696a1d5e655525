package http

import (
	"ai-task-planner/config"
	"ai-task-planner/internal/auth"
	"ai-task-planner/pkg/log"
)

type handler struct {
	l            log.Logger
	uc           auth.UseCase
	cookieConfig config.CookieConfig
}

// New creates a new HTTP handler for sign-in and session endpoints.
func New(l log.Logger, uc auth.UseCase, cookieConfig config.CookieConfig) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		cookieConfig: cookieConfig,
	}
}
