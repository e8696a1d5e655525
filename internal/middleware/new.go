package middleware

import (
	"ai-task-planner/config"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	chatLimiter  *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, rateLimitConfig config.RateLimitConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		chatLimiter:  newRateLimiter(rateLimitConfig.ChatPerMin),
	}
}
