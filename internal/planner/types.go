package planner

import (
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/taskparser"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// MaxHistoryMessages is how many trailing messages of a chat are sent to the model.
	MaxHistoryMessages = 20
)

type Config struct {
	Temperature      float64
	MaxTokens        int
	DefaultListColor string
	CalendarID       string
}

type Message struct {
	Role    string
	Content string
}

type ChatInput struct {
	Messages []Message
}

// Preview is what an AI response would import as.
type Preview struct {
	ListName   string
	Tasks      []taskparser.ParsedTask
	Validation taskparser.ValidationResult
}

type ChatOutput struct {
	Reply    string
	Provider string
	Model    string
	Preview  Preview
}

type PreviewInput struct {
	AIResponse string
}

type ImportInput struct {
	AIResponse   string
	ListName     string
	ListColor    string
	SyncCalendar bool
}

type ImportOutput struct {
	task.CreateListWithTasksOutput
	CalendarEvents int
}
