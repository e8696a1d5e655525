package planner

import (
	"errors"
	"strings"
)

var (
	ErrAssistantUnavailable = errors.New("assistant is not configured")
	ErrAssistantFailed      = errors.New("assistant failed to respond, please retry later")
	ErrEmptyMessages        = errors.New("messages are required")
	ErrInvalidRole          = errors.New("message role must be user or assistant")
	ErrLastMessageNotUser   = errors.New("last message must come from the user")
	ErrEmptyResponse        = errors.New("ai_response is required")
	ErrInvalidTasks         = errors.New("ai response did not contain valid tasks")
)

// ValidationError carries every reason a parsed batch was rejected.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidTasks.Error() + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidTasks
}
