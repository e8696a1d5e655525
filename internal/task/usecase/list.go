package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	repo "ai-task-planner/internal/task/repository"
	"ai-task-planner/pkg/taskparser"
)

// CreateList creates an empty list owned by the caller.
func (uc *implUseCase) CreateList(ctx context.Context, sc model.Scope, input task.CreateListInput) (model.List, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.List{}, task.ErrEmptyListName
	}

	list, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
		UserID: sc.UserID,
		Name:   name,
		Color:  colorOrDefault(input.Color),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateList CreateList: %v", err)
		return model.List{}, err
	}
	return list, nil
}

// ListLists returns the caller's lists with their task counts.
func (uc *implUseCase) ListLists(ctx context.Context, sc model.Scope) ([]model.List, error) {
	lists, err := uc.repo.ListLists(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListLists ListLists: %v", err)
		return nil, err
	}
	return lists, nil
}

// DeleteList removes a list and its tasks. Lists of other users are reported as not found.
func (uc *implUseCase) DeleteList(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwnedList(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteList(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteList DeleteList: %v", err)
		return err
	}
	return nil
}

// CreateListWithTasks persists an AI generated plan. Any storage failure is
// reported as ErrCreateListFailed and leaves nothing behind.
func (uc *implUseCase) CreateListWithTasks(ctx context.Context, sc model.Scope, input task.CreateListWithTasksInput) (task.CreateListWithTasksOutput, error) {
	name := strings.TrimSpace(input.ListName)
	if name == "" {
		name = taskparser.DefaultListName
	}

	opts := make([]repo.CreateTaskOptions, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		opt, err := uc.buildTaskOptions(sc, "", task.CreateTaskInput{
			Content:   t.Content,
			Priority:  t.Priority,
			Status:    t.Status,
			StartTime: t.StartTime,
			ExpiresAt: t.ExpiresAt,
		})
		if err != nil {
			return task.CreateListWithTasksOutput{}, err
		}
		opt.EstimatedHours = t.EstimatedHours
		opts = append(opts, opt)
	}

	list, tasks, err := uc.repo.CreateListWithTasks(ctx, repo.CreateListOptions{
		UserID: sc.UserID,
		Name:   name,
		Color:  colorOrDefault(input.ListColor),
	}, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateListWithTasks CreateListWithTasks: %v", err)
		return task.CreateListWithTasksOutput{}, task.ErrCreateListFailed
	}

	uc.l.Infof(ctx, "uc.CreateListWithTasks: list %s created with %d tasks", list.ID, len(tasks))
	return task.CreateListWithTasksOutput{
		ListID:    list.ID,
		ListName:  list.Name,
		TaskCount: len(tasks),
		Message:   fmt.Sprintf("created list %q with %d tasks", list.Name, len(tasks)),
	}, nil
}

func (uc *implUseCase) getOwnedList(ctx context.Context, sc model.Scope, id string) (model.List, error) {
	list, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwnedList GetOneList: %v", err)
		return model.List{}, err
	}
	if list.ID == "" {
		return model.List{}, task.ErrListNotFound
	}
	return list, nil
}

func colorOrDefault(color string) string {
	if color = strings.TrimSpace(color); color != "" {
		return color
	}
	return task.DefaultListColor
}
