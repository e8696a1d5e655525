package usecase

import (
	"context"
	"strings"

	"ai-task-planner/internal/conversation"
	repo "ai-task-planner/internal/conversation/repository"
	"ai-task-planner/internal/model"
)

// List returns one page of the caller's history.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input conversation.ListInput) (conversation.ListOutput, error) {
	page, limit := input.Page, input.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > conversation.MaxLimit {
		limit = conversation.DefaultLimit
	}

	items, total, err := uc.repo.List(ctx, repo.ListOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return conversation.ListOutput{}, err
	}

	return conversation.ListOutput{
		Conversations: items,
		Page:          page,
		Limit:         limit,
		Total:         total,
		TotalPages:    (total + limit - 1) / limit,
	}, nil
}

// Create saves one exchange with the assistant.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input conversation.CreateInput) (model.Conversation, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.UserInput) == "" || strings.TrimSpace(input.AIResponse) == "" {
		return model.Conversation{}, conversation.ErrMissingFields
	}
	if input.TaskCount < 0 {
		return model.Conversation{}, conversation.ErrInvalidTaskCount
	}

	c, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:     sc.UserID,
		Title:      strings.TrimSpace(input.Title),
		UserInput:  input.UserInput,
		AIResponse: input.AIResponse,
		TaskCount:  input.TaskCount,
		ListName:   input.ListName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return model.Conversation{}, err
	}
	return c, nil
}

// Detail returns a conversation owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Conversation, error) {
	c, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOne: %v", err)
		return model.Conversation{}, err
	}
	if c.ID == "" {
		return model.Conversation{}, conversation.ErrConversationNotFound
	}
	return c, nil
}

// Delete removes a conversation owned by the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.Detail(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	return nil
}
