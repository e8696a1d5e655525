package repository

import (
	"time"

	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/taskparser"
)

// CreateListOptions holds parameters for inserting a new List.
type CreateListOptions struct {
	UserID string
	Name   string
	Color  string
}

// GetOneListOptions holds filter parameters for fetching a single List.
// All non-empty fields are applied as AND conditions.
type GetOneListOptions struct {
	ID     string
	UserID string
}

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID         string
	ListID         string // ignored by CreateListWithTasks
	Content        string
	Priority       taskparser.Priority
	Status         taskparser.Status
	EstimatedHours *float64
	StartTime      *time.Time
	ExpiresAt      *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter, sort and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	UserID        string
	ExcludeStatus taskparser.Status
	ExpiresBefore *time.Time
	SortBy        task.SortBy
	Limit         int
	Offset        int
}

// UpdateTaskStatusOptions sets the status of a Task. CompletedAt is written as given, nil clears it.
type UpdateTaskStatusOptions struct {
	ID          string
	Status      taskparser.Status
	CompletedAt *time.Time
}
