package task

import (
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/pkg/taskparser"
)

// DefaultListColor is used when a list is created without a colour.
const DefaultListColor = "#3B82F6"

// SortBy selects the ordering of ListTasks.
type SortBy string

const (
	SortPriority         SortBy = "priority"
	SortTimeEarliest     SortBy = "time_earliest"
	SortTimeLatest       SortBy = "time_latest"
	SortDurationShortest SortBy = "duration_shortest"
	SortDurationLongest  SortBy = "duration_longest"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortPriority, SortTimeEarliest, SortTimeLatest, SortDurationShortest, SortDurationLongest:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type CreateListInput struct {
	Name  string
	Color string
}

// CreateListWithTasksInput creates a list and all of its tasks at once.
type CreateListWithTasksInput struct {
	ListName  string
	ListColor string
	Tasks     []taskparser.ParsedTask
}

type CreateTaskInput struct {
	ListID    string
	Content   string
	Priority  taskparser.Priority // medium when empty
	Status    taskparser.Status   // pending when empty
	StartTime *time.Time
	ExpiresAt *time.Time
}

type CreateTasksInput struct {
	ListID string
	Tasks  []CreateTaskInput
}

type UpdateStatusInput struct {
	TaskID string
	Status taskparser.Status
}

type ListTasksInput struct {
	Page   int
	Limit  int
	SortBy SortBy // SortPriority when empty
	Due    string // relative day such as "today" or "明天"; empty for no filter
}

// --- UseCase Outputs ---

type CreateListWithTasksOutput struct {
	ListID    string
	ListName  string
	TaskCount int
	Message   string
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
	Page  int
	Limit int
}

type StatsOutput struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

type TodayOverviewOutput struct {
	Completed      int
	InProgress     int
	Pending        int
	CreatedToday   int
	CompletionRate int // percent
}
