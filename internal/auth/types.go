package auth

import "ai-task-planner/internal/model"

const (
	MinPasswordLength = 8
	MaxPasswordLength = 32
)

type SignInInput struct {
	Email    string
	Password string
}

// SignInOutput carries the session token and the signed-in user.
// Created is true when the account was registered by this call.
type SignInOutput struct {
	Token   string
	User    model.User
	Created bool
}
