package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	repo "ai-task-planner/internal/task/repository"
	"ai-task-planner/pkg/taskparser"
)

// CreateTask adds one task to a list owned by the caller.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (model.Task, error) {
	tasks, err := uc.CreateTasks(ctx, sc, task.CreateTasksInput{
		ListID: input.ListID,
		Tasks:  []task.CreateTaskInput{input},
	})
	if err != nil {
		return model.Task{}, err
	}
	return tasks[0], nil
}

// CreateTasks adds several tasks to a list owned by the caller, all or nothing.
func (uc *implUseCase) CreateTasks(ctx context.Context, sc model.Scope, input task.CreateTasksInput) ([]model.Task, error) {
	if len(input.Tasks) == 0 {
		return nil, task.ErrNoTasks
	}

	list, err := uc.getOwnedList(ctx, sc, input.ListID)
	if err != nil {
		return nil, err
	}

	opts := make([]repo.CreateTaskOptions, 0, len(input.Tasks))
	for _, in := range input.Tasks {
		opt, err := uc.buildTaskOptions(sc, list.ID, in)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}

	tasks, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTasks CreateTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus changes the status of a task. Completing a task stamps
// completed_at with the current time; any other status clears it.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (model.Task, error) {
	if !input.Status.IsValid() {
		return model.Task{}, task.ErrInvalidStatus
	}

	existing, err := uc.getOwnedTask(ctx, sc, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}

	opt := repo.UpdateTaskStatusOptions{ID: existing.ID, Status: input.Status}
	if input.Status == taskparser.StatusCompleted {
		completedAt := uc.now()
		opt.CompletedAt = &completedAt
	}

	updated, err := uc.repo.UpdateTaskStatus(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateStatus UpdateTaskStatus: %v", err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return updated, nil
}

// DeleteTask removes a task owned by the caller.
func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwnedTask(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteTask DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwnedTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwnedTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// buildTaskOptions validates one task and fills in its defaults.
func (uc *implUseCase) buildTaskOptions(sc model.Scope, listID string, in task.CreateTaskInput) (repo.CreateTaskOptions, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return repo.CreateTaskOptions{}, task.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > taskparser.MaxContentLength {
		return repo.CreateTaskOptions{}, task.ErrContentTooLong
	}

	priority := in.Priority
	if priority == "" {
		priority = taskparser.PriorityMedium
	}
	if !priority.IsValid() {
		return repo.CreateTaskOptions{}, task.ErrInvalidPriority
	}

	status := in.Status
	if status == "" {
		status = taskparser.StatusPending
	}
	if !status.IsValid() {
		return repo.CreateTaskOptions{}, task.ErrInvalidStatus
	}

	if in.StartTime != nil && in.ExpiresAt != nil && in.ExpiresAt.Before(*in.StartTime) {
		return repo.CreateTaskOptions{}, task.ErrInvalidTimeRange
	}

	return repo.CreateTaskOptions{
		UserID:    sc.UserID,
		ListID:    listID,
		Content:   content,
		Priority:  priority,
		Status:    status,
		StartTime: in.StartTime,
		ExpiresAt: in.ExpiresAt,
	}, nil
}
