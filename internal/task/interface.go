package task

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Lists
	CreateList(ctx context.Context, sc model.Scope, input CreateListInput) (model.List, error)
	ListLists(ctx context.Context, sc model.Scope) ([]model.List, error)
	DeleteList(ctx context.Context, sc model.Scope, id string) error

	// CreateListWithTasks persists a list and its tasks in one transaction.
	CreateListWithTasks(ctx context.Context, sc model.Scope, input CreateListWithTasksInput) (CreateListWithTasksOutput, error)

	// Tasks
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)
	CreateTasks(ctx context.Context, sc model.Scope, input CreateTasksInput) ([]model.Task, error)
	UpdateStatus(ctx context.Context, sc model.Scope, input UpdateStatusInput) (model.Task, error)
	DeleteTask(ctx context.Context, sc model.Scope, id string) error
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)

	// Dashboards
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	TodayOverview(ctx context.Context, sc model.Scope) (TodayOverviewOutput, error)
}
