package usecase

import (
	"context"
	"math"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	repo "ai-task-planner/internal/task/repository"
	"ai-task-planner/pkg/taskparser"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListTasks returns the caller's unfinished tasks, sorted and paginated.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = task.SortPriority
	}
	if !sortBy.IsValid() {
		return task.ListTasksOutput{}, task.ErrInvalidSortBy
	}

	page, limit := input.Page, input.Limit
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	opt := repo.ListTasksOptions{
		UserID:        sc.UserID,
		ExcludeStatus: taskparser.StatusCompleted,
		SortBy:        sortBy,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}

	if input.Due != "" {
		day, err := uc.dateMath.Parse(input.Due, uc.now())
		if err != nil {
			return task.ListTasksOutput{}, task.ErrInvalidDue
		}
		nextDay := uc.dateMath.StartOfDay(day).AddDate(0, 0, 1)
		opt.ExpiresBefore = &nextDay
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks: tasks,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// Stats counts the caller's tasks per status.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	counts, err := uc.repo.CountTasksByStatus(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CountTasksByStatus: %v", err)
		return task.StatsOutput{}, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return task.StatsOutput{
		Total:      total,
		Pending:    counts[taskparser.StatusPending],
		InProgress: counts[taskparser.StatusInProgress],
		Completed:  counts[taskparser.StatusCompleted],
	}, nil
}

// TodayOverview summarises the caller's workload for the dashboard header.
func (uc *implUseCase) TodayOverview(ctx context.Context, sc model.Scope) (task.TodayOverviewOutput, error) {
	counts, err := uc.repo.CountTasksByStatus(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TodayOverview CountTasksByStatus: %v", err)
		return task.TodayOverviewOutput{}, err
	}

	now := uc.now()
	createdToday, err := uc.repo.CountTasksCreated(ctx, sc.UserID,
		uc.dateMath.StartOfDay(now), uc.dateMath.StartOfDay(now).AddDate(0, 0, 1))
	if err != nil {
		uc.l.Errorf(ctx, "uc.TodayOverview CountTasksCreated: %v", err)
		return task.TodayOverviewOutput{}, err
	}

	out := task.TodayOverviewOutput{
		Completed:    counts[taskparser.StatusCompleted],
		InProgress:   counts[taskparser.StatusInProgress],
		Pending:      counts[taskparser.StatusPending],
		CreatedToday: createdToday,
	}
	if open := out.Completed + out.InProgress + out.Pending; open > 0 {
		out.CompletionRate = int(math.Round(float64(out.Completed) / float64(open) * 100))
	}
	return out, nil
}
