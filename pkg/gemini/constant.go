package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 60 * time.Second

	RoleUser  = "user"
	RoleModel = "model"
)
