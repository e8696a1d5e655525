package conversation

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Conversation, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Conversation, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
