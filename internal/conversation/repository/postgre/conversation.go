package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "ai-task-planner/internal/conversation/repository"
	"ai-task-planner/internal/model"
)

// Create inserts a new Conversation row and returns the created entity.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Conversation, error) {
	const query = `
		INSERT INTO conversations (id, user_id, title, user_input, ai_response, task_count, list_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	now := time.Now().UTC()
	c := model.Conversation{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		Title:      opt.Title,
		UserInput:  opt.UserInput,
		AIResponse: opt.AIResponse,
		TaskCount:  opt.TaskCount,
		ListName:   opt.ListName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Title, c.UserInput, c.AIResponse, c.TaskCount, c.ListName, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Conversation{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOne retrieves a single Conversation by the provided filters (AND condition).
// Returns zero-value Conversation (ID == "") when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Conversation, error) {
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
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, title, user_input, ai_response, task_count, list_name, created_at, updated_at
		FROM conversations WHERE %s LIMIT 1`, where)

	var c model.Conversation
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.UserID, &c.Title, &c.UserInput, &c.AIResponse, &c.TaskCount, &c.ListName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	return c, nil
}

// List returns a page of a user's conversations, newest first, without the AI response body.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Conversation, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations WHERE user_id = $1`, opt.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}

	const query = `
		SELECT id, user_id, title, user_input, task_count, list_name, created_at, updated_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	conversations := []model.Conversation{}
	for rows.Next() {
		var c model.Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.UserInput, &c.TaskCount, &c.ListName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, 0, repo.ErrFailedToList
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return conversations, total, nil
}

// Delete removes a Conversation by ID.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
