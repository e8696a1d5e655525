package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Email        string
	Name         string
	PasswordHash string
	Avatar       string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
type GetOneUserOptions struct {
	ID    string
	Email string
}
