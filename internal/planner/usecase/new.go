package usecase

import (
	"time"

	"ai-task-planner/internal/planner"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/datemath"
	"ai-task-planner/pkg/gcalendar"
	"ai-task-planner/pkg/llmprovider"
	pkgLog "ai-task-planner/pkg/log"
	"ai-task-planner/pkg/taskparser"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      *llmprovider.Manager
	taskUC   task.UseCase
	dateMath *datemath.Parser
	calendar gcalendar.Calendar
	parser   *taskparser.Parser
	cfg      planner.Config
	now      func() time.Time
}

// New creates the planner UseCase. llm and calendar may be nil: chat then
// reports ErrAssistantUnavailable and imports skip the calendar export.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	taskUC task.UseCase,
	dateMath *datemath.Parser,
	calendar gcalendar.Calendar,
	cfg planner.Config,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		taskUC:   taskUC,
		dateMath: dateMath,
		calendar: calendar,
		parser:   taskparser.New(taskparser.WithNow(now)),
		cfg:      cfg,
		now:      now,
	}
}
