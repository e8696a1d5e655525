package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"ai-task-planner/internal/model"
	repo "ai-task-planner/internal/task/repository"
)

// CreateList inserts a new List row and returns the created entity.
func (r *implRepository) CreateList(ctx context.Context, opt repo.CreateListOptions) (model.List, error) {
	list, err := r.insertList(ctx, r.db, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateList"), err)
		return model.List{}, repo.ErrFailedToInsert
	}
	return list, nil
}

// CreateListWithTasks inserts a List and its Tasks in a single transaction.
// Nothing is persisted when any insert fails.
func (r *implRepository) CreateListWithTasks(ctx context.Context, listOpt repo.CreateListOptions, taskOpts []repo.CreateTaskOptions) (model.List, []model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateListWithTasks"), err)
		return model.List{}, nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	list, err := r.insertList(ctx, tx, listOpt)
	if err != nil {
		r.l.Errorf(ctx, "%s list: %v", r.dsn("CreateListWithTasks"), err)
		return model.List{}, nil, repo.ErrFailedToInsert
	}

	tasks := make([]model.Task, 0, len(taskOpts))
	for i, opt := range taskOpts {
		opt.ListID = list.ID
		t, err := r.insertTask(ctx, tx, opt)
		if err != nil {
			r.l.Errorf(ctx, "%s task %d: %v", r.dsn("CreateListWithTasks"), i+1, err)
			return model.List{}, nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, t)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateListWithTasks"), err)
		return model.List{}, nil, repo.ErrFailedToInsert
	}

	list.TaskCount = len(tasks)
	return list, tasks, nil
}

func (r *implRepository) insertList(ctx context.Context, ex execer, opt repo.CreateListOptions) (model.List, error) {
	const query = `
		INSERT INTO lists (id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`

	ts := now()
	list := model.List{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Name:      opt.Name,
		Color:     opt.Color,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if _, err := ex.ExecContext(ctx, query, list.ID, list.UserID, list.Name, list.Color, ts); err != nil {
		return model.List{}, err
	}
	return list, nil
}

// GetOneList retrieves a single List by the provided filters (AND condition).
// Returns zero-value List (ID == "") when not found.
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (model.List, error) {
	mods, args := r.buildGetOneListQuery(opt)
	query := fmt.Sprintf(`SELECT id, user_id, name, color, created_at, updated_at FROM lists WHERE %s LIMIT 1`, mods)

	var list model.List
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&list.ID, &list.UserID, &list.Name, &list.Color, &list.CreatedAt, &list.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.List{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneList"), err)
		return model.List{}, repo.ErrFailedToGet
	}
	return list, nil
}

// ListLists returns every list of a user with its task count, newest first.
func (r *implRepository) ListLists(ctx context.Context, userID string) ([]model.List, error) {
	const query = `
		SELECT l.id, l.user_id, l.name, l.color, l.created_at, l.updated_at, COUNT(t.id)
		FROM lists l
		LEFT JOIN tasks t ON t.list_id = l.id
		WHERE l.user_id = $1
		GROUP BY l.id, l.user_id, l.name, l.color, l.created_at, l.updated_at
		ORDER BY l.created_at DESC, l.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	lists := []model.List{}
	for rows.Next() {
		var list model.List
		if err := rows.Scan(&list.ID, &list.UserID, &list.Name, &list.Color, &list.CreatedAt, &list.UpdatedAt, &list.TaskCount); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLists"), err)
			return nil, repo.ErrFailedToList
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	return lists, nil
}

// DeleteList removes a List and its Tasks.
func (r *implRepository) DeleteList(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE list_id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s tasks: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
