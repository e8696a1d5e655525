package planner

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
	Preview(ctx context.Context, sc model.Scope, input PreviewInput) (Preview, error)
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)
}
