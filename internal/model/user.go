package model

import "time"

// DefaultAvatar is assigned to users created on first sign-in.
const DefaultAvatar = "/avatar/default.png"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
