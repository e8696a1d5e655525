package usecase

import (
	"time"

	"ai-task-planner/internal/task/repository"
	"ai-task-planner/pkg/datemath"
	pkgLog "ai-task-planner/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance. now defaults to time.Now.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      now,
	}
}
