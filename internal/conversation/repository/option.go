package repository

// CreateOptions holds parameters for inserting a new Conversation.
type CreateOptions struct {
	UserID     string
	Title      string
	UserInput  string
	AIResponse string
	TaskCount  int
	ListName   string
}

// GetOneOptions holds filter parameters for fetching a single Conversation.
type GetOneOptions struct {
	ID     string
	UserID string
}

// ListOptions holds filter and pagination parameters for listing Conversations.
type ListOptions struct {
	UserID string
	Limit  int
	Offset int
}
