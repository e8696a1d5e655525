package taskparser

import "time"

// Priority is the urgency tier of a task. Tiers are totally ordered: low < medium < high < urgent.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank returns the position of p in the priority order, or 0 for an unknown value.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	default:
		return 0
	}
}

func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusPaused     Status = "paused"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// Fragment is a raw task line found in a response, before attribute inference.
type Fragment struct {
	Ordinal     string // "3" for "3. **...**", empty when the line had no ordinal
	Name        string
	Description string
	Annotation  string // trailing parenthetical such as "(⏰ 2小时 | 🔥🔥🔥)"
	Raw         string // the matched substring, used for inference
	Offset      int    // byte offset of Raw in the scanned text
	Loose       bool   // produced by the numbered-line fallback; Name holds the whole content
}

// Content returns the text stored for the task.
func (f Fragment) Content() string {
	if f.Loose {
		return f.Name
	}
	return f.Name + " - " + f.Description
}

// ParsedTask is a task extracted from an AI response, ready to be persisted.
type ParsedTask struct {
	Content        string
	Priority       Priority
	EstimatedHours *float64
	StartTime      *time.Time
	ExpiresAt      *time.Time
	Status         Status
}

// ValidationResult lists every problem found in a parsed batch.
type ValidationResult struct {
	Valid  bool
	Errors []string
}
