package model

import "ai-task-planner/pkg/scope"

type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
)

// Scope identifies the caller of a use-case.
type Scope struct {
	UserID   string
	Username string
}

func NewScope(payload scope.Payload) Scope {
	return Scope{
		UserID:   payload.UserID,
		Username: payload.Username,
	}
}
