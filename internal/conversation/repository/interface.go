package repository

import (
	"context"

	"ai-task-planner/internal/model"
)

// Repository defines all data access methods for the Conversation entity.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Conversation, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.Conversation, error)
	List(ctx context.Context, opt ListOptions) ([]model.Conversation, int, error)
	Delete(ctx context.Context, id string) error
}
