package repository

import "errors"

var (
	ErrFailedToCount = errors.New("failed to count records")
	ErrFailedToList  = errors.New("failed to list records")
)
