package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ai-task-planner/internal/model"
	repo "ai-task-planner/internal/task/repository"
	"ai-task-planner/pkg/taskparser"
)

const taskColumns = `t.id, t.user_id, t.list_id, t.content, t.priority, t.status, t.estimated_hours,
	t.start_time, t.expires_at, t.completed_at, t.created_at, t.updated_at`

// CreateTasks inserts every task in one transaction.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	tasks := make([]model.Task, 0, len(opts))
	for i, opt := range opts {
		t, err := r.insertTask(ctx, tx, opt)
		if err != nil {
			r.l.Errorf(ctx, "%s task %d: %v", r.dsn("CreateTasks"), i+1, err)
			return nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, t)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

func (r *implRepository) insertTask(ctx context.Context, ex execer, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, list_id, content, priority, status, estimated_hours,
			start_time, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	ts := now()
	t := model.Task{
		ID:             uuid.NewString(),
		UserID:         opt.UserID,
		ListID:         opt.ListID,
		Content:        opt.Content,
		Priority:       opt.Priority,
		Status:         opt.Status,
		EstimatedHours: opt.EstimatedHours,
		StartTime:      utcPtr(opt.StartTime),
		ExpiresAt:      utcPtr(opt.ExpiresAt),
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	_, err := ex.ExecContext(ctx, query,
		t.ID, t.UserID, t.ListID, t.Content, string(t.Priority), string(t.Status),
		nullFloat(t.EstimatedHours), nullTime(t.StartTime), nullTime(t.ExpiresAt), ts,
	)
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneTaskQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks t WHERE %s LIMIT 1`, taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks joined with their list, and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	where, countArgs := r.buildListTasksFilter(opt)
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks t WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListTasksQuery(opt)
	query := fmt.Sprintf(`
		SELECT %s, l.name, l.color
		FROM tasks t
		JOIN lists l ON l.id = t.list_id
		%s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows, &listColumns{})
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTaskStatus sets status and completed_at, then returns the updated Task.
// Returns zero-value Task when the id does not exist.
func (r *implRepository) UpdateTaskStatus(ctx context.Context, opt repo.UpdateTaskStatusOptions) (model.Task, error) {
	const query = `UPDATE tasks SET status = $1, completed_at = $2, updated_at = $3 WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, string(opt.Status), nullTime(opt.CompletedAt), now(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskStatus"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, nil
	}

	t, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
	if err != nil {
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountTasksByStatus returns the number of tasks per status for a user.
// Statuses without tasks are absent from the map.
func (r *implRepository) CountTasksByStatus(ctx context.Context, userID string) (map[taskparser.Status]int, error) {
	const query = `SELECT status, COUNT(*) FROM tasks WHERE user_id = $1 GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasksByStatus"), err)
		return nil, repo.ErrFailedToCount
	}
	defer rows.Close()

	counts := make(map[taskparser.Status]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CountTasksByStatus"), err)
			return nil, repo.ErrFailedToCount
		}
		counts[taskparser.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CountTasksByStatus"), err)
		return nil, repo.ErrFailedToCount
	}
	return counts, nil
}

// CountTasksCreated counts tasks of a user created in [from, to).
func (r *implRepository) CountTasksCreated(ctx context.Context, userID string, from, to time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, from.UTC(), to.UTC()).Scan(&count); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasksCreated"), err)
		return 0, repo.ErrFailedToCount
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// listColumns receives the joined list name and colour.
type listColumns struct {
	name  string
	color string
}

func scanTask(s scanner, joined ...*listColumns) (model.Task, error) {
	var (
		t                             model.Task
		priority, status              string
		estimated                     sql.NullFloat64
		startTime, expires, completed sql.NullTime
	)
	dest := []any{
		&t.ID, &t.UserID, &t.ListID, &t.Content, &priority, &status, &estimated,
		&startTime, &expires, &completed, &t.CreatedAt, &t.UpdatedAt,
	}
	for _, j := range joined {
		dest = append(dest, &j.name, &j.color)
	}
	if err := s.Scan(dest...); err != nil {
		return model.Task{}, err
	}

	t.Priority = taskparser.Priority(priority)
	t.Status = taskparser.Status(status)
	t.EstimatedHours = floatPtr(estimated)
	t.StartTime = timePtr(startTime)
	t.ExpiresAt = timePtr(expires)
	t.CompletedAt = timePtr(completed)
	for _, j := range joined {
		t.ListName, t.ListColor = j.name, j.color
	}
	return t, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
