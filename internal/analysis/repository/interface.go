package repository

import (
	"context"
	"time"
)

type TaskCounts struct {
	Total     int
	Completed int
}

// UserCompletion is one user's number of completed tasks.
type UserCompletion struct {
	UserID string
	Name   string
	Avatar string
	Count  int
}

// Repository reads the aggregates behind the analytics pages.
type Repository interface {
	CountTasks(ctx context.Context, userID string) (TaskCounts, error)
	ListCompletionTimes(ctx context.Context, opt ListCompletionTimesOptions) ([]time.Time, error)
	// ListCompletedCounts returns users with at least one completed task,
	// most completions first.
	ListCompletedCounts(ctx context.Context, opt ListCompletedCountsOptions) ([]UserCompletion, error)
}
