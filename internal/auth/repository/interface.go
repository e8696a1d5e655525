package repository

import (
	"context"

	"ai-task-planner/internal/model"
)

// Repository defines all data access methods for the User entity.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
}
