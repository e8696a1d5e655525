package usecase

import (
	"context"
	"strings"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/planner"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/gcalendar"
	"ai-task-planner/pkg/taskparser"
)

// Preview parses an AI response without persisting anything.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input planner.PreviewInput) (planner.Preview, error) {
	if strings.TrimSpace(input.AIResponse) == "" {
		return planner.Preview{}, planner.ErrEmptyResponse
	}
	return uc.preview(input.AIResponse), nil
}

func (uc *implUseCase) preview(text string) planner.Preview {
	tasks := uc.parser.Parse(text)
	return planner.Preview{
		ListName:   taskparser.ExtractListName(text),
		Tasks:      tasks,
		Validation: taskparser.Validate(tasks),
	}
}

// Import stores the tasks of an AI response as a new list. Nothing is stored
// when validation fails.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input planner.ImportInput) (planner.ImportOutput, error) {
	if strings.TrimSpace(input.AIResponse) == "" {
		return planner.ImportOutput{}, planner.ErrEmptyResponse
	}

	p := uc.preview(input.AIResponse)
	if !p.Validation.Valid {
		return planner.ImportOutput{}, &planner.ValidationError{Errors: p.Validation.Errors}
	}

	listName := strings.TrimSpace(input.ListName)
	if listName == "" {
		listName = p.ListName
	}
	listColor := input.ListColor
	if listColor == "" {
		listColor = uc.cfg.DefaultListColor
	}

	out, err := uc.taskUC.CreateListWithTasks(ctx, sc, task.CreateListWithTasksInput{
		ListName:  listName,
		ListColor: listColor,
		Tasks:     p.Tasks,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Import CreateListWithTasks: %v", err)
		return planner.ImportOutput{}, err
	}

	result := planner.ImportOutput{CreateListWithTasksOutput: out}
	if input.SyncCalendar {
		result.CalendarEvents = uc.exportToCalendar(ctx, out.ListName, p.Tasks)
	}
	return result, nil
}

// exportToCalendar creates one event per task with a due time and returns how
// many were created. Failures are logged and skipped.
func (uc *implUseCase) exportToCalendar(ctx context.Context, listName string, tasks []taskparser.ParsedTask) int {
	if uc.calendar == nil {
		return 0
	}

	created := 0
	for _, t := range tasks {
		if t.StartTime == nil || t.ExpiresAt == nil {
			continue
		}
		_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     eventSummary(t.Content),
			Description: listName + "\n\n" + t.Content,
			StartTime:   *t.StartTime,
			EndTime:     *t.ExpiresAt,
			Timezone:    uc.dateMath.Location().String(),
			ColorID:     priorityColor(t.Priority),
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.exportToCalendar CreateEvent: %v", err)
			continue
		}
		created++
	}
	return created
}

func eventSummary(content string) string {
	if i := strings.Index(content, " - "); i > 0 {
		return content[:i]
	}
	return content
}

func priorityColor(p taskparser.Priority) string {
	switch p {
	case taskparser.PriorityUrgent:
		return "11"
	case taskparser.PriorityHigh:
		return "6"
	case taskparser.PriorityLow:
		return "2"
	default:
		return "5"
	}
}
