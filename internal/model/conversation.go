package model

import "time"

// Conversation is one saved exchange with the planning assistant.
type Conversation struct {
	ID         string
	UserID     string
	Title      string
	UserInput  string
	AIResponse string
	TaskCount  int
	ListName   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
