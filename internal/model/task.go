package model

import (
	"time"

	"ai-task-planner/pkg/taskparser"
)

// List groups tasks, usually one list per imported plan.
type List struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	TaskCount int // filled by list queries only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a persisted task.
type Task struct {
	ID             string
	UserID         string
	ListID         string
	Content        string
	Priority       taskparser.Priority
	Status         taskparser.Status
	EstimatedHours *float64
	StartTime      *time.Time
	ExpiresAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined from the owning list when listing tasks.
	ListName  string
	ListColor string
}
