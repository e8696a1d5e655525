package auth

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPassword    = errors.New("password must be between 8 and 32 characters")
	ErrInvalidCredentials = errors.New("invalid identifier or password")
	ErrUserNotFound       = errors.New("user not found")
)
