package postgre

import (
	"fmt"
	"strings"

	"ai-task-planner/internal/task"
	repo "ai-task-planner/internal/task/repository"
)

const priorityRank = `CASE t.priority WHEN 'urgent' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END`

// Tasks without a deadline or estimate always sort last.
var taskOrderBy = map[task.SortBy]string{
	task.SortPriority:         priorityRank + " DESC, t.expires_at IS NULL, t.expires_at ASC, t.created_at DESC",
	task.SortTimeEarliest:     "t.expires_at IS NULL, t.expires_at ASC, " + priorityRank + " DESC, t.created_at DESC",
	task.SortTimeLatest:       "t.expires_at IS NULL, t.expires_at DESC, " + priorityRank + " DESC, t.created_at DESC",
	task.SortDurationShortest: "t.estimated_hours IS NULL, t.estimated_hours ASC, t.created_at DESC",
	task.SortDurationLongest:  "t.estimated_hours IS NULL, t.estimated_hours DESC, t.created_at DESC",
}

func (r *implRepository) buildGetOneListQuery(opt repo.GetOneListOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildGetOneTaskQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("t.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("t.user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListTasksFilter builds the WHERE clause shared by the count and page queries.
func (r *implRepository) buildListTasksFilter(opt repo.ListTasksOptions) (string, []any) {
	conditions, args, _ := r.listTasksConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListTasksQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListTasksQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	conditions, args, idx := r.listTasksConditions(opt)

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy, ok := taskOrderBy[opt.SortBy]
	if !ok {
		orderBy = taskOrderBy[task.SortPriority]
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s, t.id", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func (r *implRepository) listTasksConditions(opt repo.ListTasksOptions) ([]string, []any, int) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("t.user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.ExcludeStatus != "" {
		conditions = append(conditions, fmt.Sprintf("t.status <> $%d", idx))
		args = append(args, string(opt.ExcludeStatus))
		idx++
	}
	if opt.ExpiresBefore != nil {
		conditions = append(conditions, fmt.Sprintf("t.expires_at IS NOT NULL AND t.expires_at < $%d", idx))
		args = append(args, opt.ExpiresBefore.UTC())
		idx++
	}

	return conditions, args, idx
}
