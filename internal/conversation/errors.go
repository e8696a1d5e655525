package conversation

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrMissingFields        = errors.New("title, user_input and ai_response are required")
	ErrInvalidTaskCount     = errors.New("task_count must not be negative")
)
