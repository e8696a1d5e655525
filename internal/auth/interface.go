package auth

import (
	"context"

	"ai-task-planner/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SignIn(ctx context.Context, input SignInInput) (SignInOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
