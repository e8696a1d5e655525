package taskparser

import "time"

const (
	// MaxContentLength is the longest accepted task content, in characters.
	MaxContentLength = 500

	// MaxHorizon caps the distance between a task's start and its due time.
	MaxHorizon = 7 * 24 * time.Hour

	// ListNameMaxLength is the number of characters kept from a goal summary.
	ListNameMaxLength = 20

	DefaultListName    = "AI生成任务"
	RelatedTasksSuffix = "相关任务"
)

const (
	ErrMsgNoTasks         = "no tasks found"
	errMsgContentEmpty    = "task %d content is empty"
	errMsgContentTooLong  = "task %d content too long"
	complexTaskHours      = 4.0
	learningTaskHours     = 2.0
	quickTaskHours        = 0.5
	longLineTokens        = 20
	mediumLineTokens      = 10
	longLineHours         = 3.0
	mediumLineHours       = 2.0
	defaultTaskHours      = 1.0
	highPriorityPositions = 2
	midPriorityPositions  = 4
)
