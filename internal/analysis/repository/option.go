package repository

import "time"

// ListCompletionTimesOptions selects completion instants of one user.
// Since is inclusive; nil means the whole history.
type ListCompletionTimesOptions struct {
	UserID string
	Since  *time.Time
}

// ListCompletedCountsOptions limits the ranking; Limit <= 0 returns every user.
type ListCompletedCountsOptions struct {
	Limit int
}
