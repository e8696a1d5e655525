package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrListNotFound     = errors.New("list not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyListName    = errors.New("list name is empty")
	ErrEmptyContent     = errors.New("task content is empty")
	ErrContentTooLong   = errors.New("task content too long")
	ErrNoTasks          = errors.New("no tasks to create")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidSortBy    = errors.New("invalid sort option")
	ErrInvalidDue       = errors.New("invalid due expression")
	ErrInvalidTimeRange = errors.New("expires_at must not be before start_time")
	ErrCreateListFailed = errors.New("failed to create list and tasks, please retry later")
)
