package usecase

import (
	"ai-task-planner/internal/auth/repository"
	"ai-task-planner/pkg/encrypter"
	"ai-task-planner/pkg/log"
	"ai-task-planner/pkg/scope"
)

type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, jwtManager scope.Manager, enc encrypter.Encrypter) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		jwtManager: jwtManager,
		encrypter:  enc,
	}
}
