package repository

import (
	"context"
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/taskparser"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	ListRepository
	TaskRepository
}

// ListRepository defines all data access methods for the List entity.
type ListRepository interface {
	CreateList(ctx context.Context, opt CreateListOptions) (model.List, error)
	// CreateListWithTasks inserts the list and every task atomically.
	CreateListWithTasks(ctx context.Context, list CreateListOptions, tasks []CreateTaskOptions) (model.List, []model.Task, error)
	GetOneList(ctx context.Context, opt GetOneListOptions) (model.List, error)
	ListLists(ctx context.Context, userID string) ([]model.List, error)
	DeleteList(ctx context.Context, id string) error
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTaskStatus(ctx context.Context, opt UpdateTaskStatusOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	CountTasksByStatus(ctx context.Context, userID string) (map[taskparser.Status]int, error)
	CountTasksCreated(ctx context.Context, userID string, from, to time.Time) (int, error)
}
